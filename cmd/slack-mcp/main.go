// Command slack-mcp runs the Slack tool catalogue as an MCP server.
//
// Configuration is environment-only: SLACK_BOT_TOKEN (required),
// SLACK_USER_TOKEN (optional, enables search), SLACK_MCP_HTTP_ADDR
// (serve streamable HTTP instead of stdio), SLACK_MCP_POLICY (path to
// a YAML policy file overriding the platform limits). A .env file in
// the working directory is honored.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/universal-tool-calling-protocol/go-slack-mcp/src/mcpserver"
	"github.com/universal-tool-calling-protocol/go-slack-mcp/src/slack"
)

func main() {
	_ = godotenv.Load()

	// Stdout belongs to the stdio transport; all logging goes to
	// stderr.
	logger := log.New(os.Stderr, "slack-mcp: ", log.LstdFlags)

	var policy *slack.Policy
	if path := os.Getenv("SLACK_MCP_POLICY"); path != "" {
		loaded, err := slack.LoadPolicy(path)
		if err != nil {
			logger.Fatalf("policy: %v", err)
		}
		policy = &loaded
	}

	client, err := slack.NewClientFromEnv(policy, logger.Printf)
	if err != nil {
		logger.Fatalf("client: %v", err)
	}

	srv := mcpserver.New(client)
	if addr := os.Getenv("SLACK_MCP_HTTP_ADDR"); addr != "" {
		logger.Printf("serving MCP over HTTP on %s", addr)
		if err := mcpserver.ServeHTTP(srv, addr); err != nil {
			logger.Fatalf("http server error: %v", err)
		}
		return
	}
	if err := mcpserver.ServeStdio(srv); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}
