// Package mcpserver assembles the Slack tool catalogue into a running
// MCP server.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/universal-tool-calling-protocol/go-slack-mcp/src/slack"
	"github.com/universal-tool-calling-protocol/go-slack-mcp/src/tools"
)

const (
	serverName    = "slack-mcp"
	serverVersion = "1.0.0"
)

// New registers the full tool catalogue for the given client on a
// fresh MCP server.
func New(client *slack.Client) *server.MCPServer {
	srv := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
	)
	for _, def := range tools.All(client) {
		srv.AddTool(def.Tool, def.Handler)
	}
	return srv
}

// ServeStdio runs the server over stdin/stdout until the stream
// closes. This is the default transport for MCP hosts.
func ServeStdio(srv *server.MCPServer) error {
	return server.ServeStdio(srv)
}

// ServeHTTP runs the server as a streamable HTTP endpoint on addr.
func ServeHTTP(srv *server.MCPServer, addr string) error {
	return server.NewStreamableHTTPServer(srv).Start(addr)
}
