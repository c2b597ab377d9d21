// ABOUTME: MCP resource implementations for calorie tracking.
// ABOUTME: Provides calorietrack://today, week, foods, and profile resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/calorietrack/internal/progress"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	uriToday   = "calorietrack://today"
	uriWeek    = "calorietrack://week"
	uriFoods   = "calorietrack://foods"
	uriProfile = "calorietrack://profile"
)

func (s *Server) registerResources() {
	// calorietrack://today - calories, macros, and meals for the current day
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriToday,
		Name:        "Today's Progress",
		Description: "Calories, macros, meal-type breakdown, and meals logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// calorietrack://week - weekly stats with insights
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriWeek,
		Name:        "Weekly Summary",
		Description: "Average calories, days on track, weight change, and insights",
		MIMEType:    "application/json",
	}, s.handleWeekResource)

	// calorietrack://foods - the whole catalog with category counts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriFoods,
		Name:        "Food Catalog",
		Description: "Every catalog food plus category counts",
		MIMEType:    "application/json",
	}, s.handleFoodsResource)

	// calorietrack://profile - profile and achievements
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriProfile,
		Name:        "User Profile",
		Description: "Profile, weekly stats, and achievements",
		MIMEType:    "application/json",
	}, s.handleProfileResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(uriToday, progress.Today(s.session.Store.Today()))
}

func (s *Server) handleWeekResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(uriWeek, progress.Week(s.session.Store.Weekly()))
}

func (s *Server) handleFoodsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	cat := s.session.Catalog
	return jsonResource(uriFoods, map[string]any{
		"foods":      cat.All(),
		"categories": cat.Categories(),
		"count":      cat.Len(),
	})
}

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(uriProfile, s.profileView())
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
