package mcpserver

import (
	"context"
	"testing"
	"time"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/universal-tool-calling-protocol/go-slack-mcp/src/slack"
)

func TestServerExposesCatalogueOverHTTP(t *testing.T) {
	apiClient, err := slack.NewClient("xoxb-test", "", nil, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	httpSrv := server.NewStreamableHTTPServer(New(apiClient))
	go func() { _ = httpSrv.Start(":8465") }()
	defer httpSrv.Shutdown(context.Background())
	// wait briefly for server to start
	time.Sleep(100 * time.Millisecond)

	cli, err := mcpclient.NewStreamableHttpClient("http://localhost:8465/mcp")
	if err != nil {
		t.Fatalf("new mcp client: %v", err)
	}
	defer cli.Close()
	if err := cli.Start(context.Background()); err != nil {
		t.Fatalf("start mcp client: %v", err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "test", Version: "1.0.0"}
	if _, err := cli.Initialize(context.Background(), initReq); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	toolsRes, err := cli.ListTools(context.Background(), mcp.ListToolsRequest{})
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	if len(toolsRes.Tools) != 14 {
		t.Fatalf("expected 14 tools, got %d", len(toolsRes.Tools))
	}
	names := map[string]bool{}
	for _, tool := range toolsRes.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"send_slack_message", "upload_slack_file", "search_slack_messages"} {
		if !names[want] {
			t.Fatalf("tool %q missing from listing", want)
		}
	}
}
