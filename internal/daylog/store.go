// ABOUTME: Process-scoped day store owning the meal list, totals, and profile.
// ABOUTME: All mutations go through one mutex so totals update atomically.
package daylog

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/calorietrack/internal/models"
	"go.uber.org/zap"
)

// DefaultCalorieGoal is used when no goal is configured.
const DefaultCalorieGoal = 2000

var (
	// ErrMealNotFound means no meal matches the given ID or prefix.
	ErrMealNotFound = errors.New("meal not found")
	// ErrAmbiguousID means a prefix matches more than one meal.
	ErrAmbiguousID = errors.New("ambiguous meal ID prefix")
	// ErrInvalidConfirmation means a confirmed result is unusable.
	ErrInvalidConfirmation = errors.New("invalid confirmation")
	// ErrInvalidAmount means a counter increment was not positive.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInvalidProfile means a profile update was rejected.
	ErrInvalidProfile = errors.New("invalid profile")
)

// FoodMatcher finds a catalog food by name, so confirmations keep macros.
type FoodMatcher interface {
	FindByName(name string) (models.FoodRecord, bool)
}

// Options configures a Store. Zero values fall back to defaults.
type Options struct {
	CalorieGoal  int
	Clock        func() time.Time
	Logger       *zap.Logger
	Foods        FoodMatcher
	Meals        []models.MealRecord
	WaterIntake  *int
	Exercise     *int
	Weekly       *models.WeeklyStats
	Profile      *models.UserProfile
	Achievements []models.Achievement
}

// Store holds one session's day, weekly summary, and profile.
type Store struct {
	clock func() time.Time
	log   *zap.Logger
	foods FoodMatcher

	mu           sync.RWMutex
	day          *models.DailyProgress
	weekly       models.WeeklyStats
	profile      models.UserProfile
	achievements []models.Achievement
}

// New creates a Store for the clock's current day.
func New(opts Options) (*Store, error) {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	goal := opts.CalorieGoal
	if goal == 0 {
		goal = DefaultCalorieGoal
	}

	now := clock()
	day, err := models.NewDailyProgress(startOfDay(now), goal, opts.Meals...)
	if err != nil {
		return nil, err
	}
	if opts.WaterIntake != nil {
		day.AddWater(*opts.WaterIntake)
	}
	if opts.Exercise != nil {
		day.AddExerciseCalories(*opts.Exercise)
	}

	s := &Store{
		clock: clock,
		log:   log,
		foods: opts.Foods,
		day:   day,
	}

	if opts.Weekly != nil {
		if err := opts.Weekly.Validate(); err != nil {
			return nil, err
		}
		s.weekly = *opts.Weekly
	} else {
		s.weekly = models.WeeklyStats{WeekStart: startOfDay(now).AddDate(0, 0, -7), WeekEnd: now}
	}

	if opts.Profile != nil {
		s.profile = opts.Profile.Clone()
	}
	s.profile.CalorieGoal = goal
	s.achievements = append([]models.Achievement(nil), opts.Achievements...)

	return s, nil
}

// Now returns the store's clock reading.
func (s *Store) Now() time.Time {
	return s.clock()
}

// LogConfirmed turns a confirmed recognition into a meal on today's log.
func (s *Store) LogConfirmed(c models.Confirmation) (models.MealRecord, error) {
	if strings.TrimSpace(c.FoodName) == "" {
		return models.MealRecord{}, fmt.Errorf("%w: missing food name", ErrInvalidConfirmation)
	}
	if c.Calories < 0 {
		return models.MealRecord{}, fmt.Errorf("%w: negative calories %d", ErrInvalidConfirmation, c.Calories)
	}
	if c.Confidence < 0 || c.Confidence > 100 {
		return models.MealRecord{}, fmt.Errorf("%w: confidence %d out of range", ErrInvalidConfirmation, c.Confidence)
	}

	food := s.foodFor(c)
	now := s.clock()
	meal := models.NewMealRecord(food, now).WithConfidence(c.Confidence)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rolloverLocked(now)
	s.day.AddMeal(*meal)

	s.log.Info("meal logged",
		zap.String("meal_id", meal.ID),
		zap.String("food", food.Name),
		zap.Int("calories", food.Calories),
		zap.String("meal_type", string(meal.MealType)),
		zap.Int("consumed", s.day.CurrentCalories),
		zap.Int("remaining", s.day.RemainingCalories),
	)
	return meal.Clone(), nil
}

// foodFor builds the embedded food record for a confirmation.
func (s *Store) foodFor(c models.Confirmation) models.FoodRecord {
	var food models.FoodRecord
	switch {
	case c.Food != nil:
		food = c.Food.Clone()
	case s.foods != nil:
		if match, ok := s.foods.FindByName(c.FoodName); ok {
			food = match
			break
		}
		fallthrough
	default:
		food = models.FoodRecord{
			ID:          "food-" + uuid.New().String()[:8],
			PortionSize: 1,
			PortionUnit: "serving",
			ImageURL:    "/placeholder-food.png",
		}
	}

	// The confirmation is what the user agreed to
	food.Name = c.FoodName
	food.Calories = c.Calories
	if c.Portion != "" {
		food.Portion = c.Portion
	}
	return food
}

// DeleteMeal removes a meal by full ID or unique prefix.
func (s *Store) DeleteMeal(idOrPrefix string) (models.MealRecord, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return models.MealRecord{}, fmt.Errorf("%w: empty ID", ErrMealNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []string
	for _, m := range s.day.Meals {
		if m.ID == idOrPrefix {
			matches = []string{m.ID}
			break
		}
		if strings.HasPrefix(m.ID, idOrPrefix) {
			matches = append(matches, m.ID)
		}
	}

	switch len(matches) {
	case 0:
		return models.MealRecord{}, fmt.Errorf("%w: %s", ErrMealNotFound, idOrPrefix)
	case 1:
	default:
		return models.MealRecord{}, fmt.Errorf("%w: %s matches %d meals", ErrAmbiguousID, idOrPrefix, len(matches))
	}

	removed, _ := s.day.RemoveMeal(matches[0])
	s.log.Info("meal deleted",
		zap.String("meal_id", removed.ID),
		zap.String("food", removed.Food.Name),
		zap.Int("consumed", s.day.CurrentCalories),
	)
	return removed, nil
}

// Today returns a copy of today's progress.
func (s *Store) Today() models.DailyProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.day.Clone()
}

// Weekly returns the weekly summary.
func (s *Store) Weekly() models.WeeklyStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w := s.weekly
	if s.weekly.WeightTrend != nil {
		v := *s.weekly.WeightTrend
		w.WeightTrend = &v
	}
	return w
}

// Profile returns a copy of the user profile.
func (s *Store) Profile() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone()
}

// Achievements returns the profile badges.
func (s *Store) Achievements() []models.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Achievement(nil), s.achievements...)
}

// SetCalorieGoal updates the profile goal and today's remaining calories.
func (s *Store) SetCalorieGoal(goal int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.day.SetCalorieGoal(goal); err != nil {
		return err
	}
	s.profile.CalorieGoal = goal
	s.log.Info("calorie goal updated", zap.Int("goal", goal), zap.Int("remaining", s.day.RemainingCalories))
	return nil
}

// AddWater adds glasses of water to today.
func (s *Store) AddWater(glasses int) (int, error) {
	if glasses <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAmount, glasses)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverLocked(s.clock())
	s.day.AddWater(glasses)
	return *s.day.WaterIntake, nil
}

// AddExercise adds burned calories to today.
func (s *Store) AddExercise(calories int) (int, error) {
	if calories <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAmount, calories)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverLocked(s.clock())
	s.day.AddExerciseCalories(calories)
	return *s.day.ExerciseCalories, nil
}

// ProfilePatch lists the profile fields to change; nil fields are left alone.
type ProfilePatch struct {
	Name          *string
	Email         *string
	CalorieGoal   *int
	Weight        *float64
	Height        *float64
	Age           *int
	ActivityLevel *string
}

// UpdateProfile applies a patch. A new calorie goal also re-targets today.
func (s *Store) UpdateProfile(p ProfilePatch) (models.UserProfile, error) {
	if p.ActivityLevel != nil && !models.IsValidActivityLevel(*p.ActivityLevel) {
		return models.UserProfile{}, fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, *p.ActivityLevel)
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return models.UserProfile{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidProfile)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p.CalorieGoal != nil {
		if err := s.day.SetCalorieGoal(*p.CalorieGoal); err != nil {
			return models.UserProfile{}, err
		}
		s.profile.CalorieGoal = *p.CalorieGoal
	}
	if p.Name != nil {
		s.profile.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		s.profile.Email = *p.Email
	}
	if p.Weight != nil {
		v := *p.Weight
		s.profile.Weight = &v
	}
	if p.Height != nil {
		v := *p.Height
		s.profile.Height = &v
	}
	if p.Age != nil {
		v := *p.Age
		s.profile.Age = &v
	}
	if p.ActivityLevel != nil {
		v := models.ActivityLevel(*p.ActivityLevel)
		s.profile.ActivityLevel = &v
	}

	s.log.Info("profile updated", zap.String("profile_id", s.profile.ID))
	return s.profile.Clone(), nil
}

// Rollover starts a fresh day if now is on a later calendar date.
func (s *Store) Rollover(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rolloverLocked(now)
}

func (s *Store) rolloverLocked(now time.Time) bool {
	today := startOfDay(now)
	if !today.After(s.day.Date) {
		return false
	}

	finished := s.day
	fresh, _ := models.NewDailyProgress(today, finished.CalorieGoal)
	s.day = fresh

	s.log.Info("day rolled over",
		zap.String("finished", finished.Date.Format("2006-01-02")),
		zap.Int("finished_calories", finished.CurrentCalories),
		zap.Int("finished_meals", len(finished.Meals)),
		zap.String("today", today.Format("2006-01-02")),
	)
	return true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
