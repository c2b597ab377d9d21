// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Runs commands in-process against a demo session with instant recognition.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// setupTestCLI points the config at a temp file with instant recognition.
// It returns the export directory configured for the run.
func setupTestCLI(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	exportDir := filepath.Join(tmpDir, "exports")
	configPath := filepath.Join(tmpDir, "config.json")
	body := `{
  "recognition_delay": "0s",
  "recognition_timeout": "5s",
  "timezone": "UTC",
  "log_level": "error",
  "export_dir": "` + filepath.ToSlash(exportDir) + `"
}`
	if err := os.WriteFile(configPath, []byte(body), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("CALORIETRACK_CONFIG", configPath)
	return exportDir
}

// resetFlags restores every flag on the command tree to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// runCLI executes the root command with args and stdin, returning combined output.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeImage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("fake jpeg bytes"), 0600); err != nil {
		t.Fatalf("Failed to write image: %v", err)
	}
	return path
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"Salmon with Rice & Vegetables", 15, "Salmon with ..."},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input  string
		length int
		want   string
	}{
		{"lunch", 8, "lunch   "},
		{"breakfast", 5, "breakfast"},
		{"", 3, "   "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.length); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
		}
	}
}

func TestRootCmd(t *testing.T) {
	if rootCmd.Use != "calorietrack" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "calorietrack")
	}

	for _, name := range []string{"empty", "seed", "goal", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected --%s persistent flag", name)
		}
	}

	want := []string{"capture", "config", "delete", "exercise", "export", "foods", "goal", "install-skill", "mcp", "profile", "progress", "serve", "version", "water"}
	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("Expected %s command to be registered", name)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	output, err := runCLI(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(output, "calorietrack dev") {
		t.Errorf("Expected version output, got: %s", output)
	}
}

func TestFoodsCmd(t *testing.T) {
	setupTestCLI(t)

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
		wantErr bool
	}{
		{
			name:    "search by name",
			args:    []string{"foods", "search", "chicken"},
			want:    []string{"Grilled Chicken Salad", "Grilled Chicken Breast"},
			notWant: []string{"Banana"},
		},
		{
			name:    "category filter",
			args:    []string{"foods", "--category", "low-calorie"},
			want:    []string{"Broccoli", "Apple"},
			notWant: []string{"Salmon"},
		},
		{
			name: "search within category",
			args: []string{"foods", "search", "grilled", "-c", "high-protein"},
			want: []string{"Grilled Chicken Breast"},
		},
		{
			name: "no match",
			args: []string{"foods", "search", "pizza"},
			want: []string{"No foods found."},
		},
		{
			name:    "unknown category",
			args:    []string{"foods", "--category", "dessert"},
			wantErr: true,
		},
		{
			name: "categories",
			args: []string{"foods", "categories"},
			want: []string{"high-protein", "High Protein", "low-calorie"},
		},
		{
			name: "show",
			args: []string{"foods", "show", "food-5"},
			want: []string{"Banana", "Calories: 105"},
		},
		{
			name:    "show missing",
			args:    []string{"foods", "show", "food-99"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runCLI(t, "", tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got output: %s", output)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v\n%s", err, output)
			}
			for _, w := range tt.want {
				if !strings.Contains(output, w) {
					t.Errorf("Expected %q in output, got: %s", w, output)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(output, w) {
					t.Errorf("Did not expect %q in output, got: %s", w, output)
				}
			}
		})
	}
}

func TestFoodsPopularAndRecentLimits(t *testing.T) {
	setupTestCLI(t)

	output, err := runCLI(t, "", "foods", "popular")
	if err != nil {
		t.Fatalf("popular failed: %v", err)
	}
	if lines := strings.Count(output, "\n"); lines != 6 {
		t.Errorf("Expected 6 popular foods, got %d:\n%s", lines, output)
	}
	if !strings.HasPrefix(strings.TrimSpace(output), "food-4") {
		t.Errorf("Expected Salmon (food-4) first, got: %s", output)
	}

	output, err = runCLI(t, "", "foods", "recent", "-n", "2")
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if lines := strings.Count(output, "\n"); lines != 2 {
		t.Errorf("Expected 2 recent foods, got %d:\n%s", lines, output)
	}
}

func TestProgressCmd(t *testing.T) {
	setupTestCLI(t)

	output, err := runCLI(t, "", "progress")
	if err != nil {
		t.Fatalf("progress failed: %v", err)
	}
	for _, want := range []string{"1447 / 2000 cal (72%)", "553 remaining", "Water: 6 glasses", "Exercise: 250 cal burned", "Protein  38%", "meal-4", "Salmon with Rice & Vegetables"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
	if strings.Index(output, "meal-4") > strings.Index(output, "meal-1") {
		t.Error("Expected meals newest first")
	}
}

func TestProgressCmdEmptyAndOverGoal(t *testing.T) {
	setupTestCLI(t)

	output, err := runCLI(t, "", "progress", "--empty")
	if err != nil {
		t.Fatalf("progress --empty failed: %v", err)
	}
	if !strings.Contains(output, "0 / 2000 cal (0%)") || !strings.Contains(output, "No meals logged yet.") {
		t.Errorf("Expected empty day, got: %s", output)
	}

	output, err = runCLI(t, "", "progress", "--goal", "1400")
	if err != nil {
		t.Fatalf("progress --goal failed: %v", err)
	}
	if !strings.Contains(output, "47 over") {
		t.Errorf("Expected '47 over', got: %s", output)
	}
}

func TestProgressWeekCmd(t *testing.T) {
	setupTestCLI(t)

	output, err := runCLI(t, "", "progress", "week")
	if err != nil {
		t.Fatalf("progress week failed: %v", err)
	}
	for _, want := range []string{"1890 cal/day", "5 of 7 days (71%)", "-2 lbs", "Insights"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}

func TestCaptureCmdWithYes(t *testing.T) {
	setupTestCLI(t)
	img := writeImage(t, "lunch.jpg")

	output, err := runCLI(t, "", "capture", img, "--yes", "--empty", "--seed", "42")
	if err != nil {
		t.Fatalf("capture failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "✓ Logged") {
		t.Errorf("Expected logged message, got: %s", output)
	}
	if !strings.Contains(output, "of 2000 cal") {
		t.Errorf("Expected running total, got: %s", output)
	}
	if len(sess.Store.Today().Meals) != 1 {
		t.Errorf("Expected 1 meal, got %d", len(sess.Store.Today().Meals))
	}
}

func TestCaptureCmdCancel(t *testing.T) {
	setupTestCLI(t)
	img := writeImage(t, "dinner.jpg")

	output, err := runCLI(t, "n\n", "capture", img, "--empty")
	if err != nil {
		t.Fatalf("capture failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Capture canceled.") {
		t.Errorf("Expected cancel message, got: %s", output)
	}
	if len(sess.Store.Today().Meals) != 0 {
		t.Errorf("Expected no meals after cancel, got %d", len(sess.Store.Today().Meals))
	}
}

func TestCaptureCmdRetakeThenConfirm(t *testing.T) {
	setupTestCLI(t)
	first := writeImage(t, "first.jpg")
	second := writeImage(t, "second.jpg")

	output, err := runCLI(t, "r\n"+second+"\ny\n", "capture", first, "--empty")
	if err != nil {
		t.Fatalf("capture failed: %v\n%s", err, output)
	}
	if strings.Count(output, "Analyzing image...") != 2 {
		t.Errorf("Expected two recognition passes, got: %s", output)
	}
	if !strings.Contains(output, "✓ Logged") {
		t.Errorf("Expected logged message, got: %s", output)
	}
	if len(sess.Store.Today().Meals) != 1 {
		t.Errorf("Expected 1 meal, got %d", len(sess.Store.Today().Meals))
	}
}

func TestCaptureCmdErrors(t *testing.T) {
	setupTestCLI(t)

	if _, err := runCLI(t, "", "capture", filepath.Join(t.TempDir(), "missing.jpg")); err == nil {
		t.Error("Expected error for missing image")
	}

	empty := filepath.Join(t.TempDir(), "empty.jpg")
	if err := os.WriteFile(empty, nil, 0600); err != nil {
		t.Fatalf("write empty image: %v", err)
	}
	output, err := runCLI(t, "", "capture", empty)
	if err == nil || !strings.Contains(err.Error(), "no image selected") {
		t.Errorf("Expected no image selected error, got %v: %s", err, output)
	}
}

func TestWaterAndExerciseCmds(t *testing.T) {
	setupTestCLI(t)

	output, err := runCLI(t, "", "water", "2")
	if err != nil {
		t.Fatalf("water failed: %v", err)
	}
	if !strings.Contains(output, "Water: 8 glasses today") {
		t.Errorf("Expected 8 glasses, got: %s", output)
	}

	output, err = runCLI(t, "", "water", "--empty")
	if err != nil {
		t.Fatalf("water failed: %v", err)
	}
	if !strings.Contains(output, "Water: 1 glasses today") {
		t.Errorf("Expected 1 glass, got: %s", output)
	}

	for _, args := range [][]string{{"water", "0"}, {"water", "abc"}, {"exercise", "-5"}} {
		if _, err := runCLI(t, "", args...); err == nil {
			t.Errorf("Expected error for %v", args)
		}
	}

	output, err = runCLI(t, "", "exercise", "100")
	if err != nil {
		t.Fatalf("exercise failed: %v", err)
	}
	if !strings.Contains(output, "Exercise: 350 cal burned today") {
		t.Errorf("Expected 350 cal, got: %s", output)
	}
}

func TestDeleteCmd(t *testing.T) {
	setupTestCLI(t)

	output, err := runCLI(t, "", "delete", "meal-2")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(output, "Deleted Grilled Chicken Salad") || !strings.Contains(output, "978 remaining") {
		t.Errorf("Unexpected delete output: %s", output)
	}

	if _, err := runCLI(t, "", "rm", "nope"); err == nil {
		t.Error("Expected error for unknown meal")
	}
	if _, err := runCLI(t, "", "delete", "meal-"); err == nil {
		t.Error("Expected error for ambiguous prefix")
	}
}

func TestGoalCmd(t *testing.T) {
	setupTestCLI(t)

	output, err := runCLI(t, "", "goal", "1800")
	if err != nil {
		t.Fatalf("goal failed: %v", err)
	}
	if !strings.Contains(output, "Goal set to 1800 cal, 353 remaining") {
		t.Errorf("Unexpected goal output: %s", output)
	}

	if _, err := runCLI(t, "", "goal", "0"); err == nil {
		t.Error("Expected error for zero goal")
	}
}

func TestProfileCmds(t *testing.T) {
	setupTestCLI(t)

	output, err := runCLI(t, "", "profile")
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	for _, want := range []string{"AJ  Alex Johnson", "Goal:     2000 cal/day", "7 Day Streak", "(locked)"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}

	output, err = runCLI(t, "", "profile", "set", "--name", "Sam Lee", "--calorie-goal", "1900")
	if err != nil {
		t.Fatalf("profile set failed: %v", err)
	}
	if !strings.Contains(output, "SL  Sam Lee") || !strings.Contains(output, "1900 cal/day") {
		t.Errorf("Unexpected profile set output: %s", output)
	}

	if _, err := runCLI(t, "", "profile", "set", "--activity", "couch"); err == nil {
		t.Error("Expected error for unknown activity level")
	}
}

func TestExportCmd(t *testing.T) {
	exportDir := setupTestCLI(t)

	output, err := runCLI(t, "", "export", "json")
	if err != nil {
		t.Fatalf("export json failed: %v", err)
	}
	var data struct {
		Tool     string `json:"tool"`
		Consumed int    `json:"consumed"`
		Meals    []any  `json:"meals"`
	}
	if err := json.Unmarshal([]byte(output), &data); err != nil {
		t.Fatalf("export json is not JSON: %v\n%s", err, output)
	}
	if data.Tool != "calorietrack" || data.Consumed != 1447 || len(data.Meals) != 4 {
		t.Errorf("Unexpected export: %+v", data)
	}

	output, err = runCLI(t, "", "export", "yaml")
	if err != nil {
		t.Fatalf("export yaml failed: %v", err)
	}
	if !strings.Contains(output, "calorie_goal: 2000") {
		t.Errorf("Expected YAML goal, got: %s", output)
	}

	output, err = runCLI(t, "", "export", "markdown", "-t", "lunch")
	if err != nil {
		t.Fatalf("export markdown failed: %v", err)
	}
	if !strings.Contains(output, "# CalorieTrack Export") || !strings.Contains(output, "Grilled Chicken Salad") {
		t.Errorf("Unexpected markdown: %s", output)
	}
	if strings.Contains(output, "Avocado Toast") {
		t.Error("Expected only lunch meals in markdown")
	}

	output, err = runCLI(t, "", "export", "json", "-o", "today.json")
	if err != nil {
		t.Fatalf("export to file failed: %v", err)
	}
	path := filepath.Join(exportDir, "today.json")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected export file at %s: %v", path, err)
	}
	if !strings.Contains(output, "Exported to") {
		t.Errorf("Expected export message, got: %s", output)
	}

	if _, err := runCLI(t, "", "export", "xml"); err == nil {
		t.Error("Expected error for unknown format")
	}
	if _, err := runCLI(t, "", "export", "json", "-t", "brunch"); err == nil {
		t.Error("Expected error for unknown meal type")
	}
}

func TestConfigCmd(t *testing.T) {
	setupTestCLI(t)

	output, err := runCLI(t, "", "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	for _, want := range []string{"calorie_goal         2000", "recognition_delay    0s", "timezone             UTC"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}

	if _, err := runCLI(t, "", "config", "init"); err == nil {
		t.Error("Expected error when config already exists")
	}
}

func TestConfigInitCmd(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.json")
	t.Setenv("CALORIETRACK_CONFIG", configPath)

	output, err := runCLI(t, "", "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(output, "Wrote") {
		t.Errorf("Expected write message, got: %s", output)
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !strings.Contains(string(data), `"calorie_goal": 2000`) {
		t.Errorf("Expected default goal in config, got: %s", data)
	}
}

func TestInvalidConfigFails(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(configPath, []byte(`{"log_format": "xml"}`), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CALORIETRACK_CONFIG", configPath)

	if _, err := runCLI(t, "", "progress"); err == nil {
		t.Error("Expected error for invalid log_format")
	}
}
