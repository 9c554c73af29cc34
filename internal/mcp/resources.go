// ABOUTME: MCP resource implementations for Oura data.
// ABOUTME: Provides oura://today with the current day's scores.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const todayURI = "oura://today"

func (s *Server) registerResources() {
	// oura://today - headline scores for the current local day
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Oura Scores",
		Description: "Sleep, readiness, and activity summaries for today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	scores, err := s.svc.Scores(ctx, s.resolver.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      todayURI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
