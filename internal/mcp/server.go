// ABOUTME: MCP server setup for the calorie tracking session.
// ABOUTME: Wraps the MCP server with the session's catalog, day store, and capture workflow.
package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/harperreed/calorietrack/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DefaultAwaitTimeout bounds how long capture tools wait for a result.
const DefaultAwaitTimeout = 30 * time.Second

// Server wraps the MCP server with session access.
type Server struct {
	mcpServer    *mcp.Server
	session      *session.Session
	validate     *validator.Validate
	awaitTimeout time.Duration
}

// NewServer creates a new MCP server over the given session.
func NewServer(s *session.Session, version string) (*Server, error) {
	if s == nil {
		return nil, errors.New("session is required")
	}
	if version == "" {
		version = "dev"
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "calorietrack",
			Version: version,
		},
		nil,
	)

	srv := &Server{
		mcpServer:    mcpServer,
		session:      s,
		validate:     validator.New(),
		awaitTimeout: DefaultAwaitTimeout,
	}

	srv.registerTools()
	srv.registerResources()

	return srv, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
