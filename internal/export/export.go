// ABOUTME: Export of today's meal log and totals.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/calorietrack/internal/models"
	"github.com/harperreed/calorietrack/internal/progress"
	"gopkg.in/yaml.v3"
)

// Version is the export format version.
const Version = "1.0"

// Formats lists the supported export formats.
var Formats = []string{"json", "yaml", "markdown"}

// ErrUnknownFormat is returned for a format not in Formats.
var ErrUnknownFormat = errors.New("unknown export format")

// Data represents the full export format for one day.
type Data struct {
	Version          string                   `json:"version" yaml:"version"`
	ExportedAt       time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool             string                   `json:"tool" yaml:"tool"`
	Date             string                   `json:"date" yaml:"date"`
	CalorieGoal      int                      `json:"calorie_goal" yaml:"calorie_goal"`
	Consumed         int                      `json:"consumed" yaml:"consumed"`
	Remaining        int                      `json:"remaining" yaml:"remaining"`
	WaterIntake      *int                     `json:"water_intake,omitempty" yaml:"water_intake,omitempty"`
	ExerciseCalories *int                     `json:"exercise_calories,omitempty" yaml:"exercise_calories,omitempty"`
	Macros           progress.MacroSplit      `json:"macros" yaml:"macros"`
	MacroGrams       progress.Macros          `json:"macro_grams" yaml:"macro_grams"`
	MealTypes        []progress.MealTypeShare `json:"meal_types" yaml:"meal_types"`
	Meals            []models.MealRecord      `json:"meals" yaml:"meals"`
}

// Build collects a day's export data. mealType, when set, restricts the meal
// list; totals always cover the whole day.
func Build(day models.DailyProgress, mealType *models.MealType, now time.Time) *Data {
	meals := day.Meals
	if mealType != nil {
		meals = make([]models.MealRecord, 0, len(day.Meals))
		for _, m := range day.Meals {
			if m.MealType == *mealType {
				meals = append(meals, m)
			}
		}
	}

	return &Data{
		Version:          Version,
		ExportedAt:       now,
		Tool:             "calorietrack",
		Date:             day.Date.Format("2006-01-02"),
		CalorieGoal:      day.CalorieGoal,
		Consumed:         day.CurrentCalories,
		Remaining:        day.RemainingCalories,
		WaterIntake:      day.WaterIntake,
		ExerciseCalories: day.ExerciseCalories,
		Macros:           progress.MacroPercentages(day.Meals),
		MacroGrams:       progress.MacroTotals(day.Meals),
		MealTypes:        progress.MealTypeShares(day.Meals),
		Meals:            progress.SortedByTimeDesc(meals),
	}
}

// Render encodes data in the named format.
func Render(format string, data *Data) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		return JSON(data)
	case "yaml":
		return YAML(data)
	case "markdown", "md":
		return []byte(Markdown(data)), nil
	default:
		return nil, fmt.Errorf("%w: %s (use json, yaml, or markdown)", ErrUnknownFormat, format)
	}
}

// JSON exports data as indented JSON.
func JSON(data *Data) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// YAML exports data as YAML with meals grouped by type.
func YAML(data *Data) ([]byte, error) {
	yamlData := struct {
		Version     string                `yaml:"version"`
		ExportedAt  string                `yaml:"exported_at"`
		Tool        string                `yaml:"tool"`
		Date        string                `yaml:"date"`
		CalorieGoal int                   `yaml:"calorie_goal"`
		Consumed    int                   `yaml:"consumed"`
		Remaining   int                   `yaml:"remaining"`
		Water       int                   `yaml:"water_intake,omitempty"`
		Exercise    int                   `yaml:"exercise_calories,omitempty"`
		Macros      progress.MacroSplit   `yaml:"macros"`
		Meals       map[string][]yamlMeal `yaml:"meals"`
	}{
		Version:     data.Version,
		ExportedAt:  data.ExportedAt.Format(time.RFC3339),
		Tool:        data.Tool,
		Date:        data.Date,
		CalorieGoal: data.CalorieGoal,
		Consumed:    data.Consumed,
		Remaining:   data.Remaining,
		Macros:      data.Macros,
		Meals:       make(map[string][]yamlMeal),
	}
	if data.WaterIntake != nil {
		yamlData.Water = *data.WaterIntake
	}
	if data.ExerciseCalories != nil {
		yamlData.Exercise = *data.ExerciseCalories
	}

	// Group meals by type
	for _, m := range data.Meals {
		ym := yamlMeal{
			ID:       m.ShortID(),
			Food:     m.Food.Name,
			Calories: m.Food.Calories,
			Portion:  m.Food.Portion,
			LoggedAt: m.Timestamp.Format(time.RFC3339),
		}
		if m.Confidence != nil {
			ym.Confidence = *m.Confidence
		}
		mt := string(m.MealType)
		yamlData.Meals[mt] = append(yamlData.Meals[mt], ym)
	}

	return yaml.Marshal(yamlData)
}

type yamlMeal struct {
	ID         string `yaml:"id"`
	Food       string `yaml:"food"`
	Calories   int    `yaml:"calories"`
	Portion    string `yaml:"portion,omitempty"`
	Confidence int    `yaml:"confidence,omitempty"`
	LoggedAt   string `yaml:"logged_at"`
}

// Markdown exports data as Markdown tables.
func Markdown(data *Data) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# CalorieTrack Export - %s\n\n", data.Date))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", data.ExportedAt.Format(time.RFC3339)))

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Goal | Consumed | Remaining |\n")
	sb.WriteString("|------|----------|-----------|\n")
	sb.WriteString(fmt.Sprintf("| %d | %d | %d |\n\n", data.CalorieGoal, data.Consumed, data.Remaining))

	if data.WaterIntake != nil || data.ExerciseCalories != nil {
		if data.WaterIntake != nil {
			sb.WriteString(fmt.Sprintf("- Water: %d glasses\n", *data.WaterIntake))
		}
		if data.ExerciseCalories != nil {
			sb.WriteString(fmt.Sprintf("- Exercise: %d cal burned\n", *data.ExerciseCalories))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Macros\n\n")
	sb.WriteString("| Protein | Carbs | Fat |\n")
	sb.WriteString("|---------|-------|-----|\n")
	sb.WriteString(fmt.Sprintf("| %d%% (%.0fg) | %d%% (%.0fg) | %d%% (%.0fg) |\n\n",
		data.Macros.Protein, data.MacroGrams.Protein,
		data.Macros.Carbs, data.MacroGrams.Carbs,
		data.Macros.Fat, data.MacroGrams.Fat))

	sb.WriteString("## Meals by Type\n\n")
	sb.WriteString("| Type | Calories | Share |\n")
	sb.WriteString("|------|----------|-------|\n")
	for _, s := range data.MealTypes {
		sb.WriteString(fmt.Sprintf("| %s | %d | %d%% |\n", s.MealType, s.Calories, s.Percent))
	}
	sb.WriteString("\n")

	if len(data.Meals) > 0 {
		sb.WriteString("## Meals\n\n")
		sb.WriteString("| Time | Type | Food | Portion | Calories | Confidence |\n")
		sb.WriteString("|------|------|------|---------|----------|------------|\n")
		for _, m := range data.Meals {
			confidence := ""
			if m.Confidence != nil {
				confidence = fmt.Sprintf("%d%%", *m.Confidence)
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %d | %s |\n",
				m.Timestamp.Format("15:04"),
				m.MealType, escapeCell(m.Food.Name), escapeCell(m.Food.Portion),
				m.Food.Calories, confidence))
		}
	}

	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
