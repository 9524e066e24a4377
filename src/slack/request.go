package slack

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	json "github.com/universal-tool-calling-protocol/go-slack-mcp/src/json"
)

// maxResponseBytes bounds how much of a platform response we read.
const maxResponseBytes = 4 << 20

// requestSpec describes one outgoing API call. It is built per
// operation and never persisted.
type requestSpec struct {
	method       string
	endpoint     string
	query        url.Values
	body         any
	multipart    bool
	useUserToken bool
}

// call is the single dispatch path every operation routes through. It
// selects the bearer credential, builds the request, executes it, and
// normalizes transport failures and remote rejections into typed
// errors. On success the full decoded envelope is returned; callers
// extract the fields they need.
func (c *Client) call(ctx context.Context, spec requestSpec) (*Envelope, error) {
	token := c.botToken
	if spec.useUserToken {
		if c.userToken == "" {
			return nil, &ConfigError{Variable: EnvUserToken}
		}
		token = c.userToken
	}

	endpoint := strings.TrimRight(c.policy.BaseURL, "/") + "/" + spec.endpoint
	if len(spec.query) > 0 {
		endpoint += "?" + spec.query.Encode()
	}

	var body io.Reader
	if spec.body != nil {
		data, err := json.Marshal(spec.body)
		if err != nil {
			return nil, &RequestError{Endpoint: spec.endpoint, Err: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, spec.method, endpoint, body)
	if err != nil {
		return nil, &RequestError{Endpoint: spec.endpoint, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if !spec.multipart {
		// Multipart requests must let the transport set its own
		// boundary header.
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	c.logf("%s %s", spec.method, spec.endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Endpoint: spec.endpoint, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &RequestError{Endpoint: spec.endpoint, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{Endpoint: spec.endpoint, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &RequestError{Endpoint: spec.endpoint, Err: fmt.Errorf("invalid response body: %w", err)}
	}

	env := newEnvelope(spec.endpoint, fields)
	if !env.OK {
		reason := env.Reason
		if reason == "" {
			reason = "unknown error"
		}
		return nil, &APIError{Endpoint: spec.endpoint, Reason: reason}
	}
	return env, nil
}
