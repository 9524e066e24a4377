package slack

import (
	"context"
	"net/http"
)

// AddReaction attaches an emoji reaction (name without colons) to the
// message at timestamp in channel.
func (c *Client) AddReaction(ctx context.Context, channel, timestamp, name string) (*Envelope, error) {
	return c.react(ctx, "reactions.add", channel, timestamp, name)
}

// RemoveReaction detaches an emoji reaction from the message at
// timestamp in channel.
func (c *Client) RemoveReaction(ctx context.Context, channel, timestamp, name string) (*Envelope, error) {
	return c.react(ctx, "reactions.remove", channel, timestamp, name)
}

func (c *Client) react(ctx context.Context, endpoint, channel, timestamp, name string) (*Envelope, error) {
	return c.call(ctx, requestSpec{
		method:   http.MethodPost,
		endpoint: endpoint,
		body: map[string]any{
			"channel":   channel,
			"timestamp": timestamp,
			"name":      name,
		},
	})
}
