package slack

import (
	"context"
	"net/http"
	"net/url"
)

// ScheduleMessage queues text for delivery to a channel at postAt, a
// Unix timestamp interpreted by the platform.
func (c *Client) ScheduleMessage(ctx context.Context, channel string, postAt int64, text string) (*Envelope, error) {
	return c.call(ctx, requestSpec{
		method:   http.MethodPost,
		endpoint: "chat.scheduleMessage",
		body:     map[string]any{"channel": channel, "post_at": postAt, "text": text},
	})
}

// ListScheduledMessages returns the pending scheduled messages. An
// empty channel means all channels.
func (c *Client) ListScheduledMessages(ctx context.Context, channel string) (*Envelope, error) {
	query := url.Values{}
	if channel != "" {
		query.Set("channel", channel)
	}
	return c.call(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: "chat.scheduledMessages.list",
		query:    query,
	})
}

// DeleteScheduledMessage cancels a pending scheduled message.
func (c *Client) DeleteScheduledMessage(ctx context.Context, channel, scheduledMessageID string) (*Envelope, error) {
	return c.call(ctx, requestSpec{
		method:   http.MethodPost,
		endpoint: "chat.deleteScheduledMessage",
		body:     map[string]any{"channel": channel, "scheduled_message_id": scheduledMessageID},
	})
}
