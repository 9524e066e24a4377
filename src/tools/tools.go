// Package tools wraps every Slack client operation as an MCP tool
// with a declared argument schema. Handlers never return a Go error to
// the framework: core failures become structured {ok:false, error}
// results so a bad call can never take the server down.
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	json "github.com/universal-tool-calling-protocol/go-slack-mcp/src/json"
	"github.com/universal-tool-calling-protocol/go-slack-mcp/src/slack"
)

// Definition pairs an MCP tool schema with its handler.
type Definition struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// All builds the full tool catalogue over one Slack client.
func All(client *slack.Client) []Definition {
	return []Definition{
		sendMessageTool(client),
		updateMessageTool(client),
		deleteMessageTool(client),
		scheduleMessageTool(client),
		listScheduledMessagesTool(client),
		deleteScheduledMessageTool(client),
		sendDirectMessageTool(client),
		addReactionTool(client),
		removeReactionTool(client),
		listChannelsTool(client),
		channelHistoryTool(client),
		listUsersTool(client),
		searchMessagesTool(client),
		uploadFileTool(client),
	}
}

// payloadResult renders a successful payload as a JSON tool result.
func payloadResult(payload any) *mcp.CallToolResult {
	text, err := json.MarshalToString(payload)
	if err != nil {
		return failureResult(err)
	}
	return mcp.NewToolResultText(text)
}

// envelopeResult renders a full response envelope.
func envelopeResult(env *slack.Envelope) *mcp.CallToolResult {
	return payloadResult(env.Fields)
}

// failureResult shapes any core error as {ok:false, error} and flags
// the result as an error for the framework.
func failureResult(err error) *mcp.CallToolResult {
	text, marshalErr := json.MarshalToString(map[string]any{"ok": false, "error": err.Error()})
	if marshalErr != nil {
		text = err.Error()
	}
	return mcp.NewToolResultError(text)
}
