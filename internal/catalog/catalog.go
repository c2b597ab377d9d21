// ABOUTME: Read-only food catalog with search, popular, and recent views.
// ABOUTME: Lookups are linear scans; the catalog is tens of items.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/harperreed/calorietrack/internal/models"
)

const (
	// DefaultPopularLimit is how many foods the popular view shows.
	DefaultPopularLimit = 6
	// DefaultRecentLimit is how many foods the recent view shows.
	DefaultRecentLimit = 5

	highProteinGrams = 15
	lowCalorieLimit  = 150
)

var (
	// ErrFoodNotFound is returned when no food has the requested ID.
	ErrFoodNotFound = errors.New("food not found")
	// ErrUnknownCategory is returned for a category filter that does not exist.
	ErrUnknownCategory = errors.New("unknown category")
)

// Category is a quick filter over the catalog.
type Category string

const (
	CategoryAll         Category = "all"
	CategoryHighProtein Category = "high-protein"
	CategoryLowCalorie  Category = "low-calorie"
)

// AllCategories lists the categories in display order.
var AllCategories = []Category{CategoryAll, CategoryHighProtein, CategoryLowCalorie}

var categoryLabels = map[Category]string{
	CategoryAll:         "All Foods",
	CategoryHighProtein: "High Protein",
	CategoryLowCalorie:  "Low Calorie",
}

// CategoryCount is a category with its label and number of matching foods.
type CategoryCount struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
	Count int      `json:"count"`
}

// Catalog is an immutable, ordered list of foods.
type Catalog struct {
	foods []models.FoodRecord
}

// New creates a catalog from the given foods, copying them.
func New(foods []models.FoodRecord) *Catalog {
	c := &Catalog{foods: make([]models.FoodRecord, 0, len(foods))}
	for _, f := range foods {
		c.foods = append(c.foods, f.Clone())
	}
	return c
}

// Len returns the number of foods.
func (c *Catalog) Len() int {
	return len(c.foods)
}

// All returns every food in catalog order.
func (c *Catalog) All() []models.FoodRecord {
	return cloneAll(c.foods)
}

// Get returns the food with the given ID.
func (c *Catalog) Get(id string) (models.FoodRecord, error) {
	for _, f := range c.foods {
		if f.ID == id {
			return f.Clone(), nil
		}
	}
	return models.FoodRecord{}, fmt.Errorf("%w: %s", ErrFoodNotFound, id)
}

// FindByName returns the first food whose name equals name, ignoring case.
func (c *Catalog) FindByName(name string) (models.FoodRecord, bool) {
	for _, f := range c.foods {
		if strings.EqualFold(f.Name, name) {
			return f.Clone(), true
		}
	}
	return models.FoodRecord{}, false
}

// Search returns foods whose name contains query, case-insensitively.
// An empty query matches everything.
func (c *Catalog) Search(query string) []models.FoodRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]models.FoodRecord, 0)
	for _, f := range c.foods {
		if strings.Contains(strings.ToLower(f.Name), q) {
			results = append(results, f.Clone())
		}
	}
	return results
}

// Popular returns the top n foods by calories, highest first.
// Calories stand in for usage counts; n <= 0 uses DefaultPopularLimit.
func (c *Catalog) Popular(n int) []models.FoodRecord {
	if n <= 0 {
		n = DefaultPopularLimit
	}
	sorted := cloneAll(c.foods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Calories > sorted[j].Calories
	})
	return head(sorted, n)
}

// Recent returns the first n foods in catalog order.
// n <= 0 uses DefaultRecentLimit.
func (c *Catalog) Recent(n int) []models.FoodRecord {
	if n <= 0 {
		n = DefaultRecentLimit
	}
	return head(cloneAll(c.foods), n)
}

// Filter returns the foods in a category.
func (c *Catalog) Filter(category Category) ([]models.FoodRecord, error) {
	match, err := categoryMatcher(category)
	if err != nil {
		return nil, err
	}
	results := make([]models.FoodRecord, 0)
	for _, f := range c.foods {
		if match(f) {
			results = append(results, f.Clone())
		}
	}
	return results, nil
}

// Query searches by name within a category, the food database view's combined filter.
func (c *Catalog) Query(query string, category Category) ([]models.FoodRecord, error) {
	match, err := categoryMatcher(category)
	if err != nil {
		return nil, err
	}
	results := make([]models.FoodRecord, 0)
	for _, f := range c.Search(query) {
		if match(f) {
			results = append(results, f)
		}
	}
	return results, nil
}

// Categories returns every category with its live count.
func (c *Catalog) Categories() []CategoryCount {
	counts := make([]CategoryCount, 0, len(AllCategories))
	for _, cat := range AllCategories {
		foods, _ := c.Filter(cat)
		counts = append(counts, CategoryCount{ID: cat, Label: categoryLabels[cat], Count: len(foods)})
	}
	return counts
}

// IsValidCategory checks if a string names a category.
func IsValidCategory(s string) bool {
	_, ok := categoryLabels[Category(s)]
	return ok
}

func categoryMatcher(category Category) (func(models.FoodRecord) bool, error) {
	switch category {
	case CategoryAll, "":
		return func(models.FoodRecord) bool { return true }, nil
	case CategoryHighProtein:
		return func(f models.FoodRecord) bool { return f.ProteinGrams() >= highProteinGrams }, nil
	case CategoryLowCalorie:
		return func(f models.FoodRecord) bool { return f.Calories < lowCalorieLimit }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
}

func cloneAll(foods []models.FoodRecord) []models.FoodRecord {
	out := make([]models.FoodRecord, 0, len(foods))
	for _, f := range foods {
		out = append(out, f.Clone())
	}
	return out
}

func head(foods []models.FoodRecord, n int) []models.FoodRecord {
	if n < len(foods) {
		return foods[:n]
	}
	return foods
}
