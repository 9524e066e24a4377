package slack

import (
	"context"
	"net/http"
)

// SendMessage posts text to a channel, named by ID or by #name.
func (c *Client) SendMessage(ctx context.Context, channel, text string) (*Envelope, error) {
	return c.call(ctx, requestSpec{
		method:   http.MethodPost,
		endpoint: "chat.postMessage",
		body:     map[string]any{"channel": channel, "text": text},
	})
}

// UpdateMessage replaces the text of an existing message, addressed by
// its channel and timestamp.
func (c *Client) UpdateMessage(ctx context.Context, channel, ts, text string) (*Envelope, error) {
	return c.call(ctx, requestSpec{
		method:   http.MethodPost,
		endpoint: "chat.update",
		body:     map[string]any{"channel": channel, "ts": ts, "text": text},
	})
}

// DeleteMessage removes a message, addressed by its channel and
// timestamp.
func (c *Client) DeleteMessage(ctx context.Context, channel, ts string) (*Envelope, error) {
	return c.call(ctx, requestSpec{
		method:   http.MethodPost,
		endpoint: "chat.delete",
		body:     map[string]any{"channel": channel, "ts": ts},
	})
}

// SendDirectMessage opens (or resumes) a direct conversation with the
// user and sends text into it. Either call failing aborts the whole
// operation with that call's error.
func (c *Client) SendDirectMessage(ctx context.Context, userID, text string) (*Envelope, error) {
	opened, err := c.call(ctx, requestSpec{
		method:   http.MethodPost,
		endpoint: "conversations.open",
		body:     map[string]any{"users": userID},
	})
	if err != nil {
		return nil, err
	}
	conversation, err := opened.Map("channel")
	if err != nil {
		return nil, err
	}
	channelID, ok := conversation["id"].(string)
	if !ok || channelID == "" {
		return nil, &ContractError{Endpoint: "conversations.open", Field: "channel.id"}
	}
	return c.SendMessage(ctx, channelID, text)
}
