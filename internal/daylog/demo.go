// ABOUTME: Demo seed for a fresh session: four meals, counters, profile, badges.
// ABOUTME: Used unless the session is configured to start empty.
package daylog

import (
	"fmt"
	"time"

	"github.com/harperreed/calorietrack/internal/models"
)

// FoodGetter looks up a catalog food by ID.
type FoodGetter interface {
	Get(id string) (models.FoodRecord, error)
}

type demoMeal struct {
	id         string
	foodID     string
	hour, min  int
	mealType   models.MealType
	confidence int
}

var demoMeals = []demoMeal{
	{id: "meal-1", foodID: "food-1", hour: 8, min: 30, mealType: models.MealBreakfast, confidence: 87},
	{id: "meal-2", foodID: "food-2", hour: 12, min: 45, mealType: models.MealLunch, confidence: 92},
	{id: "meal-3", foodID: "food-3", hour: 15, min: 20, mealType: models.MealSnack, confidence: 95},
	{id: "meal-4", foodID: "food-4", hour: 18, min: 30, mealType: models.MealDinner, confidence: 89},
}

// DemoOptions returns Options seeded with the demo day on now's date.
// Fields already set in base are kept.
func DemoOptions(base Options, now time.Time, foods FoodGetter) (Options, error) {
	opts := base
	day := startOfDay(now)

	if opts.Meals == nil {
		for _, dm := range demoMeals {
			food, err := foods.Get(dm.foodID)
			if err != nil {
				return Options{}, fmt.Errorf("seed %s: %w", dm.id, err)
			}
			at := day.Add(time.Duration(dm.hour)*time.Hour + time.Duration(dm.min)*time.Minute)
			meal := models.NewMealRecord(food, at).WithMealType(dm.mealType).WithConfidence(dm.confidence)
			meal.ID = dm.id
			opts.Meals = append(opts.Meals, *meal)
		}
	}

	if opts.WaterIntake == nil {
		water := 6
		opts.WaterIntake = &water
	}
	if opts.Exercise == nil {
		exercise := 250
		opts.Exercise = &exercise
	}

	if opts.Weekly == nil {
		trend := -2.0
		opts.Weekly = &models.WeeklyStats{
			WeekStart:       day.AddDate(0, 0, -6),
			WeekEnd:         day,
			AverageCalories: 1890,
			DaysOnTrack:     5,
			TotalDays:       7,
			WeightTrend:     &trend,
		}
	}

	if opts.Profile == nil {
		weight, height, age := 165.0, 68.0, 32
		level := models.ActivityModerate
		opts.Profile = &models.UserProfile{
			ID:            "user-1",
			Name:          "Alex Johnson",
			Email:         "alex@example.com",
			CalorieGoal:   DefaultCalorieGoal,
			Weight:        &weight,
			Height:        &height,
			Age:           &age,
			ActivityLevel: &level,
		}
	}

	if opts.Achievements == nil {
		opts.Achievements = []models.Achievement{
			{ID: 1, Title: "7 Day Streak", Icon: "🔥", Earned: true},
			{ID: 2, Title: "50 Meals Logged", Icon: "🍽️", Earned: true},
			{ID: 3, Title: "Weight Goal Reached", Icon: "🎯", Earned: false},
			{ID: 4, Title: "Early Bird", Icon: "🌅", Earned: true},
			{ID: 5, Title: "Consistency Master", Icon: "⭐", Earned: false},
			{ID: 6, Title: "Healthy Choices", Icon: "🥗", Earned: true},
		}
	}

	return opts, nil
}
