// ABOUTME: Pure folds over meal lists: macro split, per-meal-type calories, insights.
// ABOUTME: Results depend only on the input, never on meal order.
package progress

import (
	"fmt"
	"math"
	"sort"

	"github.com/harperreed/calorietrack/internal/models"
)

// Macros holds protein, carb and fat values. Used for both grams and percentages.
type Macros struct {
	Protein float64 `json:"protein" yaml:"protein"`
	Carbs   float64 `json:"carbs" yaml:"carbs"`
	Fat     float64 `json:"fat" yaml:"fat"`
}

// MacroSplit is the rounded percentage share of each macro.
//
// Each value is rounded on its own, so the three need not sum to 100.
type MacroSplit struct {
	Protein int `json:"protein" yaml:"protein"`
	Carbs   int `json:"carbs" yaml:"carbs"`
	Fat     int `json:"fat" yaml:"fat"`
}

// MacroTotals sums macro grams across meals. Missing values count as zero.
func MacroTotals(meals []models.MealRecord) Macros {
	var m Macros
	for _, meal := range meals {
		m.Protein += meal.Food.ProteinGrams()
		m.Carbs += meal.Food.CarbGrams()
		m.Fat += meal.Food.FatGrams()
	}
	return m
}

// MacroPercentages returns each macro's share of total grams, rounded.
// All three are 0 when there are no macro grams.
func MacroPercentages(meals []models.MealRecord) MacroSplit {
	t := MacroTotals(meals)
	total := t.Protein + t.Carbs + t.Fat
	if total <= 0 {
		return MacroSplit{}
	}
	return MacroSplit{
		Protein: percent(t.Protein, total),
		Carbs:   percent(t.Carbs, total),
		Fat:     percent(t.Fat, total),
	}
}

// MealTypeCalories sums calories for the meals tagged mt.
func MealTypeCalories(meals []models.MealRecord, mt models.MealType) int {
	sum := 0
	for _, meal := range meals {
		if meal.MealType == mt {
			sum += meal.Food.Calories
		}
	}
	return sum
}

// CaloriesByMealType returns calories for every meal type, zero when unused.
func CaloriesByMealType(meals []models.MealRecord) map[models.MealType]int {
	out := make(map[models.MealType]int, len(models.AllMealTypes))
	for _, mt := range models.AllMealTypes {
		out[mt] = 0
	}
	for _, meal := range meals {
		out[meal.MealType] += meal.Food.Calories
	}
	return out
}

// MealTypeShare is one row of the meals-by-type breakdown.
type MealTypeShare struct {
	MealType models.MealType `json:"meal_type" yaml:"meal_type"`
	Calories int             `json:"calories" yaml:"calories"`
	Percent  int             `json:"percent" yaml:"percent"`
}

// MealTypeShares returns the breakdown in display order. Percent is of
// consumed calories and is 0 when nothing has been eaten.
func MealTypeShares(meals []models.MealRecord) []MealTypeShare {
	byType := CaloriesByMealType(meals)
	consumed := 0
	for _, c := range byType {
		consumed += c
	}

	shares := make([]MealTypeShare, 0, len(models.AllMealTypes))
	for _, mt := range models.AllMealTypes {
		s := MealTypeShare{MealType: mt, Calories: byType[mt]}
		if consumed > 0 {
			s.Percent = percent(float64(s.Calories), float64(consumed))
		}
		shares = append(shares, s)
	}
	return shares
}

// GoalPercentage is consumed calories as a percentage of the goal, unclamped.
func GoalPercentage(p models.DailyProgress) int {
	if p.CalorieGoal <= 0 {
		return 0
	}
	return percent(float64(p.CurrentCalories), float64(p.CalorieGoal))
}

// OnTrackPercentage is the share of days on track in the week.
func OnTrackPercentage(w models.WeeklyStats) int {
	if w.TotalDays <= 0 {
		return 0
	}
	return percent(float64(w.DaysOnTrack), float64(w.TotalDays))
}

// SortedByTimeDesc returns a copy of meals, newest first.
func SortedByTimeDesc(meals []models.MealRecord) []models.MealRecord {
	out := make([]models.MealRecord, len(meals))
	copy(out, meals)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Insight is one short observation about the week.
type Insight struct {
	Title  string `json:"title" yaml:"title"`
	Detail string `json:"detail" yaml:"detail"`
}

// WeeklyInsights builds the week view's tips. The weight message only
// appears when the trend is downward.
func WeeklyInsights(w models.WeeklyStats) []Insight {
	insights := []Insight{
		{
			Title:  "Great consistency!",
			Detail: fmt.Sprintf("You've logged meals %d out of %d days this week", w.DaysOnTrack, w.TotalDays),
		},
		{
			Title:  "Average intake on target",
			Detail: fmt.Sprintf("Your average daily calories (%d) is close to your goal", w.AverageCalories),
		},
	}
	if w.WeightTrend != nil && *w.WeightTrend < 0 {
		insights = append(insights, Insight{
			Title:  "Weight progress detected",
			Detail: fmt.Sprintf("You're down %s lbs this week. Keep it up!", formatPounds(math.Abs(*w.WeightTrend))),
		})
	}
	return insights
}

// FormatTrend renders a weight change with an explicit plus sign for gains.
func FormatTrend(trend *float64) string {
	if trend == nil {
		return "n/a"
	}
	if *trend > 0 {
		return "+" + formatPounds(*trend)
	}
	return formatPounds(*trend)
}

func formatPounds(v float64) string {
	return fmt.Sprintf("%g", math.Round(v*10)/10)
}

func percent(part, total float64) int {
	return int(math.Round(part / total * 100))
}
