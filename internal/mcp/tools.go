// ABOUTME: MCP tool implementations for calorie tracking.
// ABOUTME: Drives the capture workflow and reads or edits the day log.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/calorietrack/internal/capture"
	"github.com/harperreed/calorietrack/internal/catalog"
	"github.com/harperreed/calorietrack/internal/models"
	"github.com/harperreed/calorietrack/internal/progress"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// capture_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "capture_food",
		Description: "Submit a food photo for recognition and wait for the estimate",
	}, s.handleCaptureFood)

	// retake_capture
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "retake_capture",
		Description: "Replace the photo under review and recognize again",
	}, s.handleRetakeCapture)

	// retry_capture
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "retry_capture",
		Description: "Retry recognition after a timeout or outage",
	}, s.handleRetryCapture)

	// confirm_capture
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "confirm_capture",
		Description: "Log the reviewed recognition result as a meal",
	}, s.handleConfirmCapture)

	// cancel_capture
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "cancel_capture",
		Description: "Discard the current capture and return to idle",
	}, s.handleCancelCapture)

	// capture_status
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "capture_status",
		Description: "Show the capture workflow state",
	}, s.handleCaptureStatus)

	// search_foods
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_foods",
		Description: "Search the food catalog by name, optionally within a category",
	}, s.handleSearchFoods)

	// popular_foods
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "popular_foods",
		Description: "List popular foods",
	}, s.handlePopularFoods)

	// recent_foods
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "recent_foods",
		Description: "List recently used foods",
	}, s.handleRecentFoods)

	// get_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progress",
		Description: "Get today's calories and macros, or the weekly summary",
	}, s.handleGetProgress)

	// delete_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_meal",
		Description: "Delete a logged meal by ID or ID prefix",
	}, s.handleDeleteMeal)

	// log_water
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_water",
		Description: "Add glasses of water to today's intake",
	}, s.handleLogWater)

	// log_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_exercise",
		Description: "Add calories burned by exercise today",
	}, s.handleLogExercise)

	// get_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the user profile, weekly stats, and achievements",
	}, s.handleGetProfile)

	// set_calorie_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_calorie_goal",
		Description: "Change the daily calorie goal",
	}, s.handleSetCalorieGoal)
}

// Tool input/output types

type emptyInput struct{}

type captureInput struct {
	Image string `json:"image,omitempty" jsonschema:"Base64 image data or a data: URI"`
	Path  string `json:"path,omitempty" jsonschema:"Path to an image file on disk"`
	Ref   string `json:"ref,omitempty" jsonschema:"Display name for the image" validate:"omitempty,max=255"`
}

type searchFoodsInput struct {
	Query    string `json:"query,omitempty" jsonschema:"Case-insensitive name fragment"`
	Category string `json:"category,omitempty" jsonschema:"Category filter: all, high-protein, or low-calorie" validate:"omitempty,oneof=all high-protein low-calorie"`
}

type limitInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results" validate:"omitempty,gte=1,lte=100"`
}

type foodsOutput struct {
	Foods []models.FoodRecord `json:"foods"`
	Count int                 `json:"count"`
}

type getProgressInput struct {
	Period string `json:"period,omitempty" jsonschema:"today (default) or week" validate:"omitempty,oneof=today week"`
}

type deleteMealInput struct {
	ID string `json:"id" jsonschema:"Meal ID or prefix" validate:"required"`
}

type logWaterInput struct {
	Glasses int `json:"glasses" jsonschema:"Glasses of water to add" validate:"required,gte=1,lte=50"`
}

type logExerciseInput struct {
	Calories int `json:"calories" jsonschema:"Calories burned" validate:"required,gte=1,lte=10000"`
}

type setGoalInput struct {
	CalorieGoal int `json:"calorie_goal" jsonschema:"New daily calorie goal" validate:"required,gte=1,lte=20000"`
}

type totalOutput struct {
	Total   int    `json:"total"`
	Message string `json:"message"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleCaptureFood(ctx context.Context, req *mcp.CallToolRequest, input captureInput) (*mcp.CallToolResult, any, error) {
	img, err := s.loadImage(ctx, input)
	if err != nil {
		return nil, nil, err
	}
	if err := s.session.Workflow.Acquire(img); err != nil {
		return nil, nil, fmt.Errorf("failed to start capture: %w", err)
	}
	return s.awaitSnapshot(ctx)
}

func (s *Server) handleRetakeCapture(ctx context.Context, req *mcp.CallToolRequest, input captureInput) (*mcp.CallToolResult, any, error) {
	img, err := s.loadImage(ctx, input)
	if err != nil {
		return nil, nil, err
	}
	if err := s.session.Workflow.Retake(img); err != nil {
		return nil, nil, fmt.Errorf("failed to retake: %w", err)
	}
	return s.awaitSnapshot(ctx)
}

func (s *Server) handleRetryCapture(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	if err := s.session.Workflow.Retry(); err != nil {
		return nil, nil, fmt.Errorf("failed to retry: %w", err)
	}
	return s.awaitSnapshot(ctx)
}

func (s *Server) handleConfirmCapture(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	meal, err := s.session.Workflow.Confirm()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to confirm: %w", err)
	}
	day := s.session.Store.Today()
	return nil, map[string]any{
		"meal":     meal,
		"progress": day,
		"message": fmt.Sprintf("Logged %s: %d cal (ID: %s). %d of %d cal, %d remaining",
			meal.Food.Name, meal.Food.Calories, meal.ShortID(),
			day.CurrentCalories, day.CalorieGoal, day.RemainingCalories),
	}, nil
}

func (s *Server) handleCancelCapture(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	s.session.Workflow.Cancel()
	return nil, s.session.Workflow.Snapshot(), nil
}

func (s *Server) handleCaptureStatus(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	return nil, s.session.Workflow.Snapshot(), nil
}

func (s *Server) handleSearchFoods(ctx context.Context, req *mcp.CallToolRequest, input searchFoodsInput) (*mcp.CallToolResult, foodsOutput, error) {
	if err := s.check(input); err != nil {
		return nil, foodsOutput{}, err
	}
	foods, err := s.session.Catalog.Query(input.Query, catalog.Category(input.Category))
	if err != nil {
		return nil, foodsOutput{}, fmt.Errorf("failed to search foods: %w", err)
	}
	return nil, foodsOutput{Foods: foods, Count: len(foods)}, nil
}

func (s *Server) handlePopularFoods(ctx context.Context, req *mcp.CallToolRequest, input limitInput) (*mcp.CallToolResult, foodsOutput, error) {
	if err := s.check(input); err != nil {
		return nil, foodsOutput{}, err
	}
	foods := s.session.Catalog.Popular(input.Limit)
	return nil, foodsOutput{Foods: foods, Count: len(foods)}, nil
}

func (s *Server) handleRecentFoods(ctx context.Context, req *mcp.CallToolRequest, input limitInput) (*mcp.CallToolResult, foodsOutput, error) {
	if err := s.check(input); err != nil {
		return nil, foodsOutput{}, err
	}
	foods := s.session.Catalog.Recent(input.Limit)
	return nil, foodsOutput{Foods: foods, Count: len(foods)}, nil
}

func (s *Server) handleGetProgress(ctx context.Context, req *mcp.CallToolRequest, input getProgressInput) (*mcp.CallToolResult, any, error) {
	if err := s.check(input); err != nil {
		return nil, nil, err
	}
	if input.Period == "week" {
		return nil, progress.Week(s.session.Store.Weekly()), nil
	}
	return nil, progress.Today(s.session.Store.Today()), nil
}

func (s *Server) handleDeleteMeal(ctx context.Context, req *mcp.CallToolRequest, input deleteMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.check(input); err != nil {
		return nil, simpleOutput{}, err
	}
	meal, err := s.session.Store.DeleteMeal(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete meal: %w", err)
	}
	day := s.session.Store.Today()
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted %s (ID: %s). %d cal remaining", meal.Food.Name, meal.ShortID(), day.RemainingCalories),
	}, nil
}

func (s *Server) handleLogWater(ctx context.Context, req *mcp.CallToolRequest, input logWaterInput) (*mcp.CallToolResult, totalOutput, error) {
	if err := s.check(input); err != nil {
		return nil, totalOutput{}, err
	}
	total, err := s.session.Store.AddWater(input.Glasses)
	if err != nil {
		return nil, totalOutput{}, fmt.Errorf("failed to log water: %w", err)
	}
	return nil, totalOutput{Total: total, Message: fmt.Sprintf("Water: %d glasses today", total)}, nil
}

func (s *Server) handleLogExercise(ctx context.Context, req *mcp.CallToolRequest, input logExerciseInput) (*mcp.CallToolResult, totalOutput, error) {
	if err := s.check(input); err != nil {
		return nil, totalOutput{}, err
	}
	total, err := s.session.Store.AddExercise(input.Calories)
	if err != nil {
		return nil, totalOutput{}, fmt.Errorf("failed to log exercise: %w", err)
	}
	return nil, totalOutput{Total: total, Message: fmt.Sprintf("Exercise: %d cal burned today", total)}, nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	return nil, s.profileView(), nil
}

func (s *Server) handleSetCalorieGoal(ctx context.Context, req *mcp.CallToolRequest, input setGoalInput) (*mcp.CallToolResult, totalOutput, error) {
	if err := s.check(input); err != nil {
		return nil, totalOutput{}, err
	}
	if err := s.session.Store.SetCalorieGoal(input.CalorieGoal); err != nil {
		return nil, totalOutput{}, fmt.Errorf("failed to set goal: %w", err)
	}
	day := s.session.Store.Today()
	return nil, totalOutput{
		Total:   day.CalorieGoal,
		Message: fmt.Sprintf("Goal set to %d cal, %d remaining", day.CalorieGoal, day.RemainingCalories),
	}, nil
}

func (s *Server) check(input any) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}

func (s *Server) loadImage(ctx context.Context, input captureInput) (capture.Image, error) {
	if err := s.check(input); err != nil {
		return capture.Image{}, err
	}
	if input.Path != "" {
		img, err := capture.FileSource{Path: input.Path}.Acquire(ctx)
		if err != nil {
			return capture.Image{}, err
		}
		if input.Ref != "" {
			img.Ref = input.Ref
		}
		return img, nil
	}
	return capture.ParseImage(input.Image, input.Ref)
}

// awaitSnapshot blocks until recognition settles or the await timeout passes.
// A snapshot still processing is returned as-is; capture_status can poll it.
func (s *Server) awaitSnapshot(ctx context.Context) (*mcp.CallToolResult, any, error) {
	waitCtx, cancel := context.WithTimeout(ctx, s.awaitTimeout)
	defer cancel()
	snap, _ := s.session.Workflow.Await(waitCtx)
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return nil, snap, nil
}

func (s *Server) profileView() map[string]any {
	profile := s.session.Store.Profile()
	return map[string]any{
		"profile":      profile,
		"initials":     profile.Initials(),
		"weekly":       progress.Week(s.session.Store.Weekly()),
		"achievements": s.session.Store.Achievements(),
	}
}
