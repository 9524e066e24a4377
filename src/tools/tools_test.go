package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/universal-tool-calling-protocol/go-slack-mcp/src/slack"
)

func newToolClient(t *testing.T, handler http.Handler) *slack.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	policy := slack.DefaultPolicy()
	policy.BaseURL = srv.URL
	client, err := slack.NewClient("xoxb-test", "xoxp-test", &policy, nil)
	require.NoError(t, err)
	return client
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func findTool(t *testing.T, defs []Definition, name string) Definition {
	t.Helper()
	for _, def := range defs {
		if def.Tool.Name == name {
			return def
		}
	}
	t.Fatalf("tool %q not in catalogue", name)
	return Definition{}
}

func TestCatalogueNamesAreUnique(t *testing.T) {
	client, err := slack.NewClient("xoxb-test", "", nil, nil)
	require.NoError(t, err)

	defs := All(client)
	assert.Len(t, defs, 14)

	seen := map[string]bool{}
	for _, def := range defs {
		require.NotEmpty(t, def.Tool.Name)
		require.NotNil(t, def.Handler)
		assert.False(t, seen[def.Tool.Name], "duplicate tool name %q", def.Tool.Name)
		seen[def.Tool.Name] = true
	}
}

func TestSendMessageToolReturnsEnvelope(t *testing.T) {
	client := newToolClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"ts":"123.456"}`))
	}))

	def := findTool(t, All(client), "send_slack_message")
	res, err := def.Handler(context.Background(), callRequest("send_slack_message", map[string]any{
		"channel": "#general",
		"text":    "hello",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
	assert.Equal(t, true, payload["ok"])
	assert.Equal(t, "123.456", payload["ts"])
}

func TestToolFailureIsStructuredNotFatal(t *testing.T) {
	client := newToolClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"error":"invalid_auth"}`))
	}))

	def := findTool(t, All(client), "send_slack_message")
	res, err := def.Handler(context.Background(), callRequest("send_slack_message", map[string]any{
		"channel": "#general",
		"text":    "hello",
	}))
	require.NoError(t, err, "core errors must become structured results, not handler errors")
	require.True(t, res.IsError)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
	assert.Equal(t, false, payload["ok"])
	assert.Contains(t, payload["error"], "invalid_auth")
}

func TestChannelHistoryToolDefaultsLimit(t *testing.T) {
	var gotLimit string
	client := newToolClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		w.Write([]byte(`{"ok":true,"messages":[]}`))
	}))

	def := findTool(t, All(client), "get_slack_channel_history")
	res, err := def.Handler(context.Background(), callRequest("get_slack_channel_history", map[string]any{
		"channel_id": "C1",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, "10", gotLimit, "absent limit should use the policy default")

	_, err = def.Handler(context.Background(), callRequest("get_slack_channel_history", map[string]any{
		"channel_id": "C1",
		"limit":      42,
	}))
	require.NoError(t, err)
	assert.Equal(t, "42", gotLimit)
}

func TestSearchToolWithoutUserToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no network call expected")
	}))
	t.Cleanup(srv.Close)

	policy := slack.DefaultPolicy()
	policy.BaseURL = srv.URL
	client, err := slack.NewClient("xoxb-test", "", &policy, nil)
	require.NoError(t, err)

	def := findTool(t, All(client), "search_slack_messages")
	res, err := def.Handler(context.Background(), callRequest("search_slack_messages", map[string]any{
		"query": "deploy",
	}))
	require.NoError(t, err)
	require.True(t, res.IsError)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
	assert.Contains(t, payload["error"], slack.EnvUserToken)
}

func TestListChannelsToolReturnsList(t *testing.T) {
	client := newToolClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"channels":[{"id":"C1","name":"general"}]}`))
	}))

	def := findTool(t, All(client), "get_slack_channels")
	res, err := def.Handler(context.Background(), callRequest("get_slack_channels", nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var channels []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &channels))
	require.Len(t, channels, 1)
	assert.Equal(t, "general", channels[0]["name"])
}
