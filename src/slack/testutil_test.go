package slack

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient points a client with both credentials at an httptest
// server.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	policy := DefaultPolicy()
	policy.BaseURL = srv.URL
	client, err := NewClient("xoxb-test", "xoxp-test", &policy, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func okJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}
