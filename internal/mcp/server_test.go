// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, capture tools, log tools, and resource handlers.
package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/calorietrack/internal/capture"
	"github.com/harperreed/calorietrack/internal/catalog"
	"github.com/harperreed/calorietrack/internal/daylog"
	"github.com/harperreed/calorietrack/internal/models"
	"github.com/harperreed/calorietrack/internal/progress"
	"github.com/harperreed/calorietrack/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 14, 19, 0, 0, 0, time.UTC)
}

// setupTestServer builds a server over a demo-seeded session.
func setupTestServer(t *testing.T, opts session.Options) *Server {
	t.Helper()

	if opts.Clock == nil {
		opts.Clock = fixedClock
	}
	s, err := session.New(opts)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	server, err := NewServer(s, "test")
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	server.awaitTimeout = 5 * time.Second
	return server
}

func bananaOnly() *catalog.Catalog {
	return catalog.New([]models.FoodRecord{
		{ID: "food-5", Name: "Banana", Calories: 105, Portion: "1 medium", Carbs: models.Grams(27)},
	})
}

func encoded(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestNewServer(t *testing.T) {
	server := setupTestServer(t, session.Options{})

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.session == nil {
		t.Error("Expected non-nil session")
	}

	if _, err := NewServer(nil, ""); err == nil {
		t.Error("Expected error for nil session")
	}
}

func TestHandleCaptureAndConfirm(t *testing.T) {
	server := setupTestServer(t, session.Options{Catalog: bananaOnly(), StartEmpty: true})
	ctx := context.Background()

	_, out, err := server.handleCaptureFood(ctx, &mcp.CallToolRequest{}, captureInput{Image: encoded("plate"), Ref: "plate.jpg"})
	if err != nil {
		t.Fatalf("capture_food failed: %v", err)
	}
	snap, ok := out.(capture.Snapshot)
	if !ok {
		t.Fatalf("Expected capture.Snapshot, got %T", out)
	}
	if snap.State != capture.StateReviewing {
		t.Fatalf("State = %s, want reviewing", snap.State)
	}
	if snap.Result == nil || snap.Result.FoodName != "Banana" {
		t.Fatalf("Result = %+v, want Banana", snap.Result)
	}

	_, out, err = server.handleConfirmCapture(ctx, &mcp.CallToolRequest{}, emptyInput{})
	if err != nil {
		t.Fatalf("confirm_capture failed: %v", err)
	}
	result := out.(map[string]any)
	meal := result["meal"].(models.MealRecord)
	if meal.MealType != models.MealDinner {
		t.Errorf("MealType = %s, want dinner", meal.MealType)
	}
	day := result["progress"].(models.DailyProgress)
	if day.CurrentCalories != 105 || day.RemainingCalories != 1895 {
		t.Errorf("progress = %d/%d, want 105/1895", day.CurrentCalories, day.RemainingCalories)
	}
	if !strings.Contains(result["message"].(string), "Banana") {
		t.Errorf("message %q should mention Banana", result["message"])
	}

	_, out, _ = server.handleCaptureStatus(ctx, &mcp.CallToolRequest{}, emptyInput{})
	if out.(capture.Snapshot).State != capture.StateIdle {
		t.Errorf("State after confirm = %s, want idle", out.(capture.Snapshot).State)
	}
}

func TestHandleCaptureFromPath(t *testing.T) {
	server := setupTestServer(t, session.Options{Catalog: bananaOnly(), StartEmpty: true})

	path := filepath.Join(t.TempDir(), "lunch.jpg")
	if err := os.WriteFile(path, []byte("jpeg bytes"), 0o600); err != nil {
		t.Fatalf("write image: %v", err)
	}

	_, out, err := server.handleCaptureFood(context.Background(), &mcp.CallToolRequest{}, captureInput{Path: path})
	if err != nil {
		t.Fatalf("capture_food failed: %v", err)
	}
	snap := out.(capture.Snapshot)
	if snap.ImageRef != "lunch.jpg" {
		t.Errorf("ImageRef = %q, want lunch.jpg", snap.ImageRef)
	}
}

func TestHandleCaptureNoImage(t *testing.T) {
	server := setupTestServer(t, session.Options{})

	_, _, err := server.handleCaptureFood(context.Background(), &mcp.CallToolRequest{}, captureInput{})
	if !errors.Is(err, capture.ErrNoImageSelected) {
		t.Errorf("err = %v, want ErrNoImageSelected", err)
	}
	if got := server.session.Workflow.Snapshot().State; got != capture.StateIdle {
		t.Errorf("State = %s, want idle", got)
	}
}

func TestHandleCaptureTransitions(t *testing.T) {
	server := setupTestServer(t, session.Options{Seed: 3})
	ctx := context.Background()

	if _, _, err := server.handleConfirmCapture(ctx, &mcp.CallToolRequest{}, emptyInput{}); !errors.Is(err, capture.ErrInvalidTransition) {
		t.Errorf("confirm from idle err = %v, want ErrInvalidTransition", err)
	}
	if _, _, err := server.handleRetryCapture(ctx, &mcp.CallToolRequest{}, emptyInput{}); !errors.Is(err, capture.ErrInvalidTransition) {
		t.Errorf("retry from idle err = %v, want ErrInvalidTransition", err)
	}
	if _, _, err := server.handleRetakeCapture(ctx, &mcp.CallToolRequest{}, captureInput{Image: encoded("x")}); !errors.Is(err, capture.ErrInvalidTransition) {
		t.Errorf("retake from idle err = %v, want ErrInvalidTransition", err)
	}

	if _, _, err := server.handleCaptureFood(ctx, &mcp.CallToolRequest{}, captureInput{Image: encoded("first")}); err != nil {
		t.Fatalf("capture_food failed: %v", err)
	}
	_, out, err := server.handleRetakeCapture(ctx, &mcp.CallToolRequest{}, captureInput{Image: encoded("second"), Ref: "second.jpg"})
	if err != nil {
		t.Fatalf("retake_capture failed: %v", err)
	}
	if snap := out.(capture.Snapshot); snap.State != capture.StateReviewing || snap.ImageRef != "second.jpg" {
		t.Errorf("after retake = %s %q, want reviewing second.jpg", snap.State, snap.ImageRef)
	}

	_, out, _ = server.handleCancelCapture(ctx, &mcp.CallToolRequest{}, emptyInput{})
	if out.(capture.Snapshot).State != capture.StateIdle {
		t.Errorf("State after cancel = %s, want idle", out.(capture.Snapshot).State)
	}
	if got := len(server.session.Store.Today().Meals); got != 4 {
		t.Errorf("meals = %d, want 4 (cancel must not log)", got)
	}
}

func TestHandleSearchFoods(t *testing.T) {
	server := setupTestServer(t, session.Options{})
	ctx := context.Background()

	tests := []struct {
		name    string
		input   searchFoodsInput
		want    int
		wantErr bool
	}{
		{"all", searchFoodsInput{}, 15, false},
		{"by name", searchFoodsInput{Query: "chicken"}, 2, false},
		{"by category", searchFoodsInput{Category: "high-protein"}, 5, false},
		{"name within category", searchFoodsInput{Query: "grilled", Category: "high-protein"}, 2, false},
		{"no match", searchFoodsInput{Query: "pizza"}, 0, false},
		{"bad category", searchFoodsInput{Category: "dessert"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := server.handleSearchFoods(ctx, &mcp.CallToolRequest{}, tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if out.Count != tt.want || len(out.Foods) != tt.want {
				t.Errorf("Count = %d, want %d", out.Count, tt.want)
			}
		})
	}
}

func TestHandlePopularAndRecentFoods(t *testing.T) {
	server := setupTestServer(t, session.Options{})
	ctx := context.Background()

	_, popular, err := server.handlePopularFoods(ctx, &mcp.CallToolRequest{}, limitInput{})
	if err != nil {
		t.Fatalf("popular_foods failed: %v", err)
	}
	if popular.Count != catalog.DefaultPopularLimit {
		t.Errorf("popular count = %d, want %d", popular.Count, catalog.DefaultPopularLimit)
	}

	_, recent, err := server.handleRecentFoods(ctx, &mcp.CallToolRequest{}, limitInput{Limit: 3})
	if err != nil {
		t.Fatalf("recent_foods failed: %v", err)
	}
	if recent.Count != 3 || recent.Foods[0].Name != "Avocado Toast" {
		t.Errorf("recent = %d starting %q, want 3 starting Avocado Toast", recent.Count, recent.Foods[0].Name)
	}

	if _, _, err := server.handleRecentFoods(ctx, &mcp.CallToolRequest{}, limitInput{Limit: 500}); err == nil {
		t.Error("Expected error for limit 500")
	}
}

func TestHandleGetProgress(t *testing.T) {
	server := setupTestServer(t, session.Options{})
	ctx := context.Background()

	_, out, err := server.handleGetProgress(ctx, &mcp.CallToolRequest{}, getProgressInput{})
	if err != nil {
		t.Fatalf("get_progress failed: %v", err)
	}
	today := out.(progress.TodaySummary)
	if today.Progress.CurrentCalories != 1447 {
		t.Errorf("CurrentCalories = %d, want 1447", today.Progress.CurrentCalories)
	}

	_, out, err = server.handleGetProgress(ctx, &mcp.CallToolRequest{}, getProgressInput{Period: "week"})
	if err != nil {
		t.Fatalf("get_progress week failed: %v", err)
	}
	if week := out.(progress.WeekSummary); week.OnTrackPercent != 71 {
		t.Errorf("OnTrackPercent = %d, want 71", week.OnTrackPercent)
	}

	if _, _, err := server.handleGetProgress(ctx, &mcp.CallToolRequest{}, getProgressInput{Period: "month"}); err == nil {
		t.Error("Expected error for period month")
	}
}

func TestHandleDeleteMeal(t *testing.T) {
	server := setupTestServer(t, session.Options{})
	ctx := context.Background()

	_, out, err := server.handleDeleteMeal(ctx, &mcp.CallToolRequest{}, deleteMealInput{ID: "meal-3"})
	if err != nil {
		t.Fatalf("delete_meal failed: %v", err)
	}
	if !strings.Contains(out.Message, "Greek Yogurt") {
		t.Errorf("Message %q should mention Greek Yogurt", out.Message)
	}
	if got := server.session.Store.Today().CurrentCalories; got != 1297 {
		t.Errorf("CurrentCalories = %d, want 1297", got)
	}

	_, _, err = server.handleDeleteMeal(ctx, &mcp.CallToolRequest{}, deleteMealInput{ID: "meal-3"})
	if !errors.Is(err, daylog.ErrMealNotFound) {
		t.Errorf("err = %v, want ErrMealNotFound", err)
	}

	if _, _, err := server.handleDeleteMeal(ctx, &mcp.CallToolRequest{}, deleteMealInput{}); err == nil {
		t.Error("Expected error for empty ID")
	}
}

func TestHandleLogWaterAndExercise(t *testing.T) {
	server := setupTestServer(t, session.Options{})
	ctx := context.Background()

	_, water, err := server.handleLogWater(ctx, &mcp.CallToolRequest{}, logWaterInput{Glasses: 1})
	if err != nil {
		t.Fatalf("log_water failed: %v", err)
	}
	if water.Total != 7 {
		t.Errorf("water total = %d, want 7", water.Total)
	}

	_, exercise, err := server.handleLogExercise(ctx, &mcp.CallToolRequest{}, logExerciseInput{Calories: 50})
	if err != nil {
		t.Fatalf("log_exercise failed: %v", err)
	}
	if exercise.Total != 300 {
		t.Errorf("exercise total = %d, want 300", exercise.Total)
	}

	if _, _, err := server.handleLogWater(ctx, &mcp.CallToolRequest{}, logWaterInput{Glasses: -2}); err == nil {
		t.Error("Expected error for negative glasses")
	}
}

func TestHandleSetCalorieGoal(t *testing.T) {
	server := setupTestServer(t, session.Options{})
	ctx := context.Background()

	_, out, err := server.handleSetCalorieGoal(ctx, &mcp.CallToolRequest{}, setGoalInput{CalorieGoal: 2500})
	if err != nil {
		t.Fatalf("set_calorie_goal failed: %v", err)
	}
	if out.Total != 2500 {
		t.Errorf("Total = %d, want 2500", out.Total)
	}
	if got := server.session.Store.Today().RemainingCalories; got != 1053 {
		t.Errorf("RemainingCalories = %d, want 1053", got)
	}

	if _, _, err := server.handleSetCalorieGoal(ctx, &mcp.CallToolRequest{}, setGoalInput{}); err == nil {
		t.Error("Expected error for zero goal")
	}
}

func TestHandleGetProfile(t *testing.T) {
	server := setupTestServer(t, session.Options{})

	_, out, err := server.handleGetProfile(context.Background(), &mcp.CallToolRequest{}, emptyInput{})
	if err != nil {
		t.Fatalf("get_profile failed: %v", err)
	}
	view := out.(map[string]any)
	if view["initials"] != "AJ" {
		t.Errorf("initials = %v, want AJ", view["initials"])
	}
	if got := len(view["achievements"].([]models.Achievement)); got != 6 {
		t.Errorf("achievements = %d, want 6", got)
	}
}

func TestResources(t *testing.T) {
	server := setupTestServer(t, session.Options{})
	ctx := context.Background()

	tests := []struct {
		uri     string
		handler func(context.Context, *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error)
		key     string
	}{
		{uriToday, server.handleTodayResource, "progress"},
		{uriWeek, server.handleWeekResource, "insights"},
		{uriFoods, server.handleFoodsResource, "categories"},
		{uriProfile, server.handleProfileResource, "achievements"},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			result, err := tt.handler(ctx, &mcp.ReadResourceRequest{})
			if err != nil {
				t.Fatalf("read %s failed: %v", tt.uri, err)
			}
			if len(result.Contents) != 1 {
				t.Fatalf("Contents = %d, want 1", len(result.Contents))
			}
			content := result.Contents[0]
			if content.URI != tt.uri {
				t.Errorf("URI = %s, want %s", content.URI, tt.uri)
			}
			if content.MIMEType != "application/json" {
				t.Errorf("MIMEType = %s, want application/json", content.MIMEType)
			}

			var decoded map[string]any
			if err := json.Unmarshal([]byte(content.Text), &decoded); err != nil {
				t.Fatalf("resource is not JSON: %v", err)
			}
			if _, ok := decoded[tt.key]; !ok {
				t.Errorf("resource missing %q key", tt.key)
			}
		})
	}
}

func TestTodayResourceReflectsLog(t *testing.T) {
	server := setupTestServer(t, session.Options{StartEmpty: true})

	if _, err := server.session.Store.AddWater(3); err != nil {
		t.Fatalf("AddWater failed: %v", err)
	}
	result, err := server.handleTodayResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("read today failed: %v", err)
	}

	var today progress.TodaySummary
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &today); err != nil {
		t.Fatalf("decode today: %v", err)
	}
	if today.Progress.WaterIntake == nil || *today.Progress.WaterIntake != 3 {
		t.Errorf("WaterIntake = %v, want 3", today.Progress.WaterIntake)
	}
	if len(today.Meals) != 0 {
		t.Errorf("Meals = %d, want 0", len(today.Meals))
	}
}
