package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"

	"github.com/universal-tool-calling-protocol/go-slack-mcp/src/slack"
)

func uploadFileTool(client *slack.Client) Definition {
	tool := mcp.NewTool("upload_slack_file",
		mcp.WithDescription("Upload a local file and share it into a channel."),
		mcp.WithString("channel_id", mcp.Required(), mcp.Description("ID of the channel to share the file into")),
		mcp.WithString("file_path", mcp.Required(), mcp.Description("Path of the local file to upload")),
		mcp.WithString("title", mcp.Description("Optional title for the file")),
	)
	return Definition{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		env, err := client.UploadFile(ctx,
			cast.ToString(args["channel_id"]),
			cast.ToString(args["file_path"]),
			cast.ToString(args["title"]),
		)
		if err != nil {
			return failureResult(err), nil
		}
		return envelopeResult(env), nil
	}}
}
