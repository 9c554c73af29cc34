// ABOUTME: MCP tool implementations for Oura reports.
// ABOUTME: Provides scores, sleep detail, score trend, and raw endpoint access.
package mcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/harperreed/oura/internal/report"
	"github.com/harperreed/oura/internal/trend"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const defaultTrendDays = 7

func (s *Server) registerTools() {
	// get_scores
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_scores",
		Description: "Get sleep, readiness, and activity scores for a day",
	}, s.handleGetScores)

	// get_sleep
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_sleep",
		Description: "Get the daily sleep summary and sleep periods (stages, HRV, heart rate) for a day",
	}, s.handleGetSleep)

	// get_trend
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_trend",
		Description: "Get daily scores for the last N days with per-score averages",
	}, s.handleGetTrend)

	// get_raw
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_raw",
		Description: "Get the unmodified API response for any usercollection endpoint on a day",
	}, s.handleGetRaw)
}

// Tool input/output types

type dayInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD, today, or yesterday. Defaults to today."`
}

type trendInput struct {
	Days int `json:"days,omitempty" jsonschema:"Number of days ending today. Defaults to 7."`
}

type rawInput struct {
	Endpoint string `json:"endpoint" jsonschema:"Endpoint name such as daily_sleep, sleep, daily_activity, daily_stress, heartrate"`
	Date     string `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD, today, or yesterday. Defaults to today."`
}

type scoreTiers struct {
	Sleep     string `json:"sleep,omitempty"`
	Readiness string `json:"readiness,omitempty"`
	Activity  string `json:"activity,omitempty"`
}

type trendOutput struct {
	Start    civil.Date  `json:"start"`
	End      civil.Date  `json:"end"`
	Rows     []trend.Row `json:"rows"`
	Averages struct {
		Sleep     *int `json:"sleep"`
		Readiness *int `json:"readiness"`
		Activity  *int `json:"activity"`
	} `json:"averages"`
}

// Tool handlers

func tierOf(score *int) string {
	if score == nil {
		return ""
	}
	return report.ScoreTier(*score).String()
}

func (s *Server) handleGetScores(ctx context.Context, req *mcp.CallToolRequest, input dayInput) (*mcp.CallToolResult, any, error) {
	day, err := s.resolver.Resolve(input.Date)
	if err != nil {
		return nil, nil, err
	}

	scores, err := s.svc.Scores(ctx, day)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get scores: %w", err)
	}

	var tiers scoreTiers
	if scores.Sleep != nil {
		tiers.Sleep = tierOf(scores.Sleep.Score)
	}
	if scores.Readiness != nil {
		tiers.Readiness = tierOf(scores.Readiness.Score)
	}
	if scores.Activity != nil {
		tiers.Activity = tierOf(scores.Activity.Score)
	}

	return nil, map[string]any{
		"day":       scores.Day,
		"sleep":     scores.Sleep,
		"readiness": scores.Readiness,
		"activity":  scores.Activity,
		"tiers":     tiers,
	}, nil
}

func (s *Server) handleGetSleep(ctx context.Context, req *mcp.CallToolRequest, input dayInput) (*mcp.CallToolResult, any, error) {
	day, err := s.resolver.Resolve(input.Date)
	if err != nil {
		return nil, nil, err
	}

	detail, err := s.svc.Sleep(ctx, day)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get sleep: %w", err)
	}

	return nil, map[string]any{
		"day":     detail.Day,
		"daily":   detail.Daily,
		"periods": detail.Periods,
		"main":    detail.Main(),
	}, nil
}

func (s *Server) handleGetTrend(ctx context.Context, req *mcp.CallToolRequest, input trendInput) (*mcp.CallToolResult, any, error) {
	days := input.Days
	if days == 0 {
		days = defaultTrendDays
	}
	if days < 0 {
		return nil, nil, fmt.Errorf("days must be positive, got %d", days)
	}

	window := s.resolver.TrailingWindow(days)
	s.logger.Debug("mcp get_trend", zap.Stringer("window", window))

	table, err := s.svc.Trend(ctx, window)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trend: %w", err)
	}

	out := trendOutput{Start: window.Start, End: window.End, Rows: table.Rows}
	out.Averages.Sleep = table.Sleep.Mean()
	out.Averages.Readiness = table.Readiness.Mean()
	out.Averages.Activity = table.Activity.Mean()
	return nil, out, nil
}

func (s *Server) handleGetRaw(ctx context.Context, req *mcp.CallToolRequest, input rawInput) (*mcp.CallToolResult, any, error) {
	day, err := s.resolver.Resolve(input.Date)
	if err != nil {
		return nil, nil, err
	}

	body, err := s.svc.Raw(ctx, input.Endpoint, day)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get %s: %w", input.Endpoint, err)
	}
	return nil, body, nil
}
