package slack

import (
	"context"
	"net/http"
)

// ListUsers returns every member of the workspace.
func (c *Client) ListUsers(ctx context.Context) ([]any, error) {
	env, err := c.call(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: "users.list",
	})
	if err != nil {
		return nil, err
	}
	return env.List("members")
}
