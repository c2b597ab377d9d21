// ABOUTME: Today and week summaries assembled from the folds for rendering.
// ABOUTME: Shared by the CLI, HTTP, and MCP surfaces.
package progress

import "github.com/harperreed/calorietrack/internal/models"

// TodaySummary is everything the today view shows.
type TodaySummary struct {
	Progress    models.DailyProgress `json:"progress"`
	GoalPercent int                  `json:"goal_percent"`
	Macros      MacroSplit           `json:"macros"`
	MacroGrams  Macros               `json:"macro_grams"`
	MealTypes   []MealTypeShare      `json:"meal_types"`
	Meals       []models.MealRecord  `json:"meals"`
}

// Today summarizes a day. Meals are listed newest first.
func Today(day models.DailyProgress) TodaySummary {
	return TodaySummary{
		Progress:    day,
		GoalPercent: GoalPercentage(day),
		Macros:      MacroPercentages(day.Meals),
		MacroGrams:  MacroTotals(day.Meals),
		MealTypes:   MealTypeShares(day.Meals),
		Meals:       SortedByTimeDesc(day.Meals),
	}
}

// WeekSummary is everything the week view shows.
type WeekSummary struct {
	Stats          models.WeeklyStats `json:"stats"`
	OnTrackPercent int                `json:"on_track_percent"`
	WeightChange   string             `json:"weight_change"`
	Insights       []Insight          `json:"insights"`
}

// Week summarizes the weekly stats.
func Week(w models.WeeklyStats) WeekSummary {
	return WeekSummary{
		Stats:          w,
		OnTrackPercent: OnTrackPercentage(w),
		WeightChange:   FormatTrend(w.WeightTrend),
		Insights:       WeeklyInsights(w),
	}
}
