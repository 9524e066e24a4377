package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"

	"github.com/universal-tool-calling-protocol/go-slack-mcp/src/slack"
)

func listChannelsTool(client *slack.Client) Definition {
	tool := mcp.NewTool("get_slack_channels",
		mcp.WithDescription("List every Slack channel the bot can see."),
	)
	return Definition{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		channels, err := client.ListChannels(ctx)
		if err != nil {
			return failureResult(err), nil
		}
		return payloadResult(channels), nil
	}}
}

func channelHistoryTool(client *slack.Client) Definition {
	tool := mcp.NewTool("get_slack_channel_history",
		mcp.WithDescription("Fetch one page of messages from a channel, newest first."),
		mcp.WithString("channel_id", mcp.Required(), mcp.Description("ID of the channel to read")),
		mcp.WithNumber("limit", mcp.Description("Number of messages to fetch (default 10, max 100)")),
	)
	return Definition{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		limit := client.Policy().HistoryDefault
		if raw, ok := args["limit"]; ok {
			limit = cast.ToInt(raw)
		}
		messages, err := client.ChannelHistory(ctx, cast.ToString(args["channel_id"]), limit)
		if err != nil {
			return failureResult(err), nil
		}
		return payloadResult(messages), nil
	}}
}

func listUsersTool(client *slack.Client) Definition {
	tool := mcp.NewTool("get_slack_users",
		mcp.WithDescription("List every member of the workspace."),
	)
	return Definition{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		members, err := client.ListUsers(ctx)
		if err != nil {
			return failureResult(err), nil
		}
		return payloadResult(members), nil
	}}
}

func searchMessagesTool(client *slack.Client) Definition {
	tool := mcp.NewTool("search_slack_messages",
		mcp.WithDescription("Search messages across the workspace. Requires a user token."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search keywords")),
		mcp.WithNumber("count", mcp.Description("Number of results (default 20)")),
	)
	return Definition{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		matches, err := client.SearchMessages(ctx, cast.ToString(args["query"]), cast.ToInt(args["count"]))
		if err != nil {
			return failureResult(err), nil
		}
		return payloadResult(matches), nil
	}}
}
