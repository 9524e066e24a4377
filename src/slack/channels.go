package slack

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListChannels returns every channel the bot can see.
func (c *Client) ListChannels(ctx context.Context) ([]any, error) {
	env, err := c.call(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: "conversations.list",
	})
	if err != nil {
		return nil, err
	}
	return env.List("channels")
}

// ChannelHistory returns one page of messages from a channel, newest
// first. The limit is clamped into the policy's allowed range before
// the request is built; the tool layer supplies the policy's
// HistoryDefault when the caller names no limit.
func (c *Client) ChannelHistory(ctx context.Context, channelID string, limit int) ([]any, error) {
	limit = c.policy.clampHistoryLimit(limit)
	query := url.Values{}
	query.Set("channel", channelID)
	query.Set("limit", strconv.Itoa(limit))
	env, err := c.call(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: "conversations.history",
		query:    query,
	})
	if err != nil {
		return nil, err
	}
	return env.List("messages")
}
