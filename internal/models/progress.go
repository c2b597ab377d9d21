// ABOUTME: DailyProgress and WeeklyStats models for calorie tracking.
// ABOUTME: Daily totals are recomputed from the meal list on every mutation.
package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidGoal is returned for a non-positive calorie goal.
var ErrInvalidGoal = errors.New("calorie goal must be positive")

// DailyProgress is one day's meal log and running totals.
//
// CurrentCalories is always the sum of the meals' calories and
// RemainingCalories is always CalorieGoal - CurrentCalories (not clamped).
// Mutate only through the methods so the two stay in step.
type DailyProgress struct {
	Date              time.Time    `json:"date" yaml:"date"`
	CalorieGoal       int          `json:"calorie_goal" yaml:"calorie_goal"`
	CurrentCalories   int          `json:"current_calories" yaml:"current_calories"`
	RemainingCalories int          `json:"remaining_calories" yaml:"remaining_calories"`
	Meals             []MealRecord `json:"meals" yaml:"meals"`
	WaterIntake       *int         `json:"water_intake,omitempty" yaml:"water_intake,omitempty"`
	ExerciseCalories  *int         `json:"exercise_calories,omitempty" yaml:"exercise_calories,omitempty"`
}

// NewDailyProgress creates a day with the given goal and meals in insertion order.
func NewDailyProgress(date time.Time, goal int, meals ...MealRecord) (*DailyProgress, error) {
	if goal <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGoal, goal)
	}
	p := &DailyProgress{
		Date:        date,
		CalorieGoal: goal,
		Meals:       make([]MealRecord, 0, len(meals)),
	}
	for _, m := range meals {
		p.Meals = append(p.Meals, m.Clone())
	}
	p.recompute()
	return p, nil
}

// AddMeal appends a meal and updates both totals.
func (p *DailyProgress) AddMeal(m MealRecord) {
	p.Meals = append(p.Meals, m.Clone())
	p.recompute()
}

// RemoveMeal removes the meal with the given ID and reports whether it existed.
func (p *DailyProgress) RemoveMeal(id string) (MealRecord, bool) {
	for i, m := range p.Meals {
		if m.ID == id {
			p.Meals = append(p.Meals[:i:i], p.Meals[i+1:]...)
			p.recompute()
			return m, true
		}
	}
	return MealRecord{}, false
}

// SetCalorieGoal changes the goal and recomputes remaining calories.
func (p *DailyProgress) SetCalorieGoal(goal int) error {
	if goal <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidGoal, goal)
	}
	p.CalorieGoal = goal
	p.recompute()
	return nil
}

// AddWater adds glasses of water to the day's counter.
func (p *DailyProgress) AddWater(glasses int) {
	total := glasses
	if p.WaterIntake != nil {
		total += *p.WaterIntake
	}
	p.WaterIntake = &total
}

// AddExerciseCalories adds burned calories to the day's exercise counter.
func (p *DailyProgress) AddExerciseCalories(calories int) {
	total := calories
	if p.ExerciseCalories != nil {
		total += *p.ExerciseCalories
	}
	p.ExerciseCalories = &total
}

// Clone returns a deep copy.
func (p DailyProgress) Clone() DailyProgress {
	c := p
	c.Meals = make([]MealRecord, 0, len(p.Meals))
	for _, m := range p.Meals {
		c.Meals = append(c.Meals, m.Clone())
	}
	if p.WaterIntake != nil {
		v := *p.WaterIntake
		c.WaterIntake = &v
	}
	if p.ExerciseCalories != nil {
		v := *p.ExerciseCalories
		c.ExerciseCalories = &v
	}
	return c
}

func (p *DailyProgress) recompute() {
	consumed := 0
	for _, m := range p.Meals {
		consumed += m.Food.Calories
	}
	p.CurrentCalories = consumed
	p.RemainingCalories = p.CalorieGoal - consumed
}

// WeeklyStats is an externally supplied, read-only weekly summary.
type WeeklyStats struct {
	WeekStart       time.Time `json:"week_start" yaml:"week_start"`
	WeekEnd         time.Time `json:"week_end" yaml:"week_end"`
	AverageCalories int       `json:"average_calories" yaml:"average_calories"`
	DaysOnTrack     int       `json:"days_on_track" yaml:"days_on_track"`
	TotalDays       int       `json:"total_days" yaml:"total_days"`
	WeightTrend     *float64  `json:"weight_trend,omitempty" yaml:"weight_trend,omitempty"`
}

// Validate checks 0 <= DaysOnTrack <= TotalDays.
func (w WeeklyStats) Validate() error {
	if w.TotalDays < 0 || w.DaysOnTrack < 0 || w.DaysOnTrack > w.TotalDays {
		return fmt.Errorf("invalid weekly stats: %d of %d days on track", w.DaysOnTrack, w.TotalDays)
	}
	return nil
}
