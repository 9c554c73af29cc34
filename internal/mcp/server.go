// ABOUTME: MCP server exposing Oura reports over stdio.
// ABOUTME: Wraps the MCP server with the shared report fetch service.
package mcp

import (
	"context"
	"errors"

	"github.com/harperreed/oura/internal/dates"
	"github.com/harperreed/oura/internal/summary"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Server wraps the MCP server with API access.
type Server struct {
	mcpServer *mcp.Server
	svc       *summary.Service
	resolver  *dates.Resolver
	logger    *zap.Logger
}

// NewServer creates an MCP server backed by svc. Dates are resolved against
// resolver; a nil logger disables logging.
func NewServer(svc *summary.Service, resolver *dates.Resolver, logger *zap.Logger) (*Server, error) {
	if svc == nil {
		return nil, errors.New("mcp: nil service")
	}
	if resolver == nil {
		resolver = dates.NewResolver(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "oura",
			Version: Version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		svc:       svc,
		resolver:  resolver,
		logger:    logger,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve runs the server on stdio until ctx is cancelled or the client
// disconnects.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Debug("mcp server starting", zap.String("transport", "stdio"))
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
