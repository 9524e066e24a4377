package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"

	"github.com/universal-tool-calling-protocol/go-slack-mcp/src/slack"
)

func sendMessageTool(client *slack.Client) Definition {
	tool := mcp.NewTool("send_slack_message",
		mcp.WithDescription("Send a message to a Slack channel."),
		mcp.WithString("channel", mcp.Required(), mcp.Description("Channel ID or name, e.g. #general or C1234567890")),
		mcp.WithString("text", mcp.Required(), mcp.Description("Message text")),
	)
	return Definition{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		env, err := client.SendMessage(ctx, cast.ToString(args["channel"]), cast.ToString(args["text"]))
		if err != nil {
			return failureResult(err), nil
		}
		return envelopeResult(env), nil
	}}
}

func updateMessageTool(client *slack.Client) Definition {
	tool := mcp.NewTool("update_slack_message",
		mcp.WithDescription("Replace the text of an existing message."),
		mcp.WithString("channel", mcp.Required(), mcp.Description("Channel ID the message lives in")),
		mcp.WithString("ts", mcp.Required(), mcp.Description("Timestamp of the message to edit")),
		mcp.WithString("text", mcp.Required(), mcp.Description("Replacement text")),
	)
	return Definition{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		env, err := client.UpdateMessage(ctx, cast.ToString(args["channel"]), cast.ToString(args["ts"]), cast.ToString(args["text"]))
		if err != nil {
			return failureResult(err), nil
		}
		return envelopeResult(env), nil
	}}
}

func deleteMessageTool(client *slack.Client) Definition {
	tool := mcp.NewTool("delete_slack_message",
		mcp.WithDescription("Delete a message."),
		mcp.WithString("channel", mcp.Required(), mcp.Description("Channel ID the message lives in")),
		mcp.WithString("ts", mcp.Required(), mcp.Description("Timestamp of the message to delete")),
	)
	return Definition{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		env, err := client.DeleteMessage(ctx, cast.ToString(args["channel"]), cast.ToString(args["ts"]))
		if err != nil {
			return failureResult(err), nil
		}
		return envelopeResult(env), nil
	}}
}

func scheduleMessageTool(client *slack.Client) Definition {
	tool := mcp.NewTool("schedule_slack_message",
		mcp.WithDescription("Schedule a message for later delivery."),
		mcp.WithString("channel", mcp.Required(), mcp.Description("Channel ID or name")),
		mcp.WithNumber("post_at", mcp.Required(), mcp.Description("Unix timestamp for delivery")),
		mcp.WithString("text", mcp.Required(), mcp.Description("Message text")),
	)
	return Definition{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		env, err := client.ScheduleMessage(ctx, cast.ToString(args["channel"]), cast.ToInt64(args["post_at"]), cast.ToString(args["text"]))
		if err != nil {
			return failureResult(err), nil
		}
		return envelopeResult(env), nil
	}}
}

func listScheduledMessagesTool(client *slack.Client) Definition {
	tool := mcp.NewTool("list_scheduled_slack_messages",
		mcp.WithDescription("List pending scheduled messages, optionally for one channel."),
		mcp.WithString("channel", mcp.Description("Channel ID; omit for all channels")),
	)
	return Definition{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		env, err := client.ListScheduledMessages(ctx, cast.ToString(args["channel"]))
		if err != nil {
			return failureResult(err), nil
		}
		return envelopeResult(env), nil
	}}
}

func deleteScheduledMessageTool(client *slack.Client) Definition {
	tool := mcp.NewTool("delete_scheduled_slack_message",
		mcp.WithDescription("Cancel a pending scheduled message."),
		mcp.WithString("channel", mcp.Required(), mcp.Description("Channel ID the message was scheduled for")),
		mcp.WithString("scheduled_message_id", mcp.Required(), mcp.Description("ID returned when the message was scheduled")),
	)
	return Definition{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		env, err := client.DeleteScheduledMessage(ctx, cast.ToString(args["channel"]), cast.ToString(args["scheduled_message_id"]))
		if err != nil {
			return failureResult(err), nil
		}
		return envelopeResult(env), nil
	}}
}

func sendDirectMessageTool(client *slack.Client) Definition {
	tool := mcp.NewTool("send_slack_direct_message",
		mcp.WithDescription("Send a direct message to a specific user."),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("ID of the user to message")),
		mcp.WithString("text", mcp.Required(), mcp.Description("Message text")),
	)
	return Definition{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		env, err := client.SendDirectMessage(ctx, cast.ToString(args["user_id"]), cast.ToString(args["text"]))
		if err != nil {
			return failureResult(err), nil
		}
		return envelopeResult(env), nil
	}}
}

func addReactionTool(client *slack.Client) Definition {
	tool := mcp.NewTool("add_slack_reaction",
		mcp.WithDescription("Add an emoji reaction to a message."),
		mcp.WithString("channel", mcp.Required(), mcp.Description("Channel ID the message lives in")),
		mcp.WithString("timestamp", mcp.Required(), mcp.Description("Timestamp of the message")),
		mcp.WithString("reaction", mcp.Required(), mcp.Description("Emoji name without colons")),
	)
	return Definition{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		env, err := client.AddReaction(ctx, cast.ToString(args["channel"]), cast.ToString(args["timestamp"]), cast.ToString(args["reaction"]))
		if err != nil {
			return failureResult(err), nil
		}
		return envelopeResult(env), nil
	}}
}

func removeReactionTool(client *slack.Client) Definition {
	tool := mcp.NewTool("remove_slack_reaction",
		mcp.WithDescription("Remove an emoji reaction from a message."),
		mcp.WithString("channel", mcp.Required(), mcp.Description("Channel ID the message lives in")),
		mcp.WithString("timestamp", mcp.Required(), mcp.Description("Timestamp of the message")),
		mcp.WithString("reaction", mcp.Required(), mcp.Description("Emoji name without colons")),
	)
	return Definition{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		env, err := client.RemoveReaction(ctx, cast.ToString(args["channel"]), cast.ToString(args["timestamp"]), cast.ToString(args["reaction"]))
		if err != nil {
			return failureResult(err), nil
		}
		return envelopeResult(env), nil
	}}
}
