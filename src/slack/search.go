package slack

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// SearchMessages runs a workspace-wide message search. Search is only
// available to user tokens, so a client without one fails with a
// ConfigError before any network call. A non-positive count selects
// the policy's default result count.
func (c *Client) SearchMessages(ctx context.Context, query string, count int) ([]any, error) {
	if count <= 0 {
		count = c.policy.SearchDefaultCount
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("count", strconv.Itoa(count))
	env, err := c.call(ctx, requestSpec{
		method:       http.MethodGet,
		endpoint:     "search.messages",
		query:        params,
		useUserToken: true,
	})
	if err != nil {
		return nil, err
	}
	messages, err := env.Map("messages")
	if err != nil {
		return nil, err
	}
	matches, ok := messages["matches"].([]any)
	if !ok {
		return nil, &ContractError{Endpoint: "search.messages", Field: "messages.matches"}
	}
	return matches, nil
}
