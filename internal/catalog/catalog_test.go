// ABOUTME: Tests for the food catalog.
// ABOUTME: Covers search, popular/recent views, categories, and immutability.
package catalog

import (
	"errors"
	"testing"

	"github.com/harperreed/calorietrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(foods []models.FoodRecord) []string {
	out := make([]string, 0, len(foods))
	for _, f := range foods {
		out = append(out, f.Name)
	}
	return out
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Equal(t, 15, c.Len())

	all := c.All()
	assert.Equal(t, "Avocado Toast", all[0].Name)
	assert.Equal(t, "Peanut Butter", all[14].Name)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	c := Default()

	lower := c.Search("yogurt")
	upper := c.Search("YOGURT")

	require.Len(t, lower, 1)
	assert.Equal(t, names(lower), names(upper))
	assert.Equal(t, "Greek Yogurt", lower[0].Name)
	assert.Equal(t, 150, lower[0].Calories)
}

func TestSearch(t *testing.T) {
	c := Default()

	tests := []struct {
		query string
		want  []string
	}{
		{"chicken", []string{"Grilled Chicken Salad", "Grilled Chicken Breast"}},
		{"RICE", []string{"Salmon with Rice & Vegetables", "Brown Rice"}},
		{"  banana ", []string{"Banana"}},
		{"pizza", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, names(c.Search(tt.query)))
		})
	}
}

func TestSearchEmptyQueryMatchesAll(t *testing.T) {
	c := Default()
	assert.Len(t, c.Search(""), c.Len())
}

func TestPopular(t *testing.T) {
	c := Default()

	got := names(c.Popular(0))
	want := []string{
		"Salmon with Rice & Vegetables",
		"Grilled Chicken Salad",
		"Avocado Toast",
		"Oatmeal with Berries",
		"Protein Smoothie",
		"Brown Rice",
	}
	assert.Equal(t, want, got)

	assert.Len(t, c.Popular(2), 2)
	assert.Len(t, c.Popular(100), c.Len())
}

func TestPopularIsStableForTies(t *testing.T) {
	c := New([]models.FoodRecord{
		{ID: "a", Name: "A", Calories: 100},
		{ID: "b", Name: "B", Calories: 200},
		{ID: "c", Name: "C", Calories: 100},
	})
	assert.Equal(t, []string{"B", "A", "C"}, names(c.Popular(3)))
}

func TestRecent(t *testing.T) {
	c := Default()

	got := names(c.Recent(0))
	assert.Equal(t, []string{"Avocado Toast", "Grilled Chicken Salad", "Greek Yogurt", "Salmon with Rice & Vegetables", "Banana"}, got)
	assert.Len(t, c.Recent(3), 3)
}

func TestGet(t *testing.T) {
	c := Default()

	f, err := c.Get("food-5")
	require.NoError(t, err)
	assert.Equal(t, "Banana", f.Name)

	_, err = c.Get("food-99")
	assert.True(t, errors.Is(err, ErrFoodNotFound))
}

func TestFindByName(t *testing.T) {
	c := Default()

	f, ok := c.FindByName("greek yogurt")
	require.True(t, ok)
	assert.Equal(t, "food-3", f.ID)

	_, ok = c.FindByName("Greek")
	assert.False(t, ok)
}

func TestFilterAndCategories(t *testing.T) {
	c := Default()

	protein, err := c.Filter(CategoryHighProtein)
	require.NoError(t, err)
	assert.Equal(t, []string{"Grilled Chicken Salad", "Greek Yogurt", "Salmon with Rice & Vegetables", "Protein Smoothie", "Grilled Chicken Breast"}, names(protein))

	low, err := c.Filter(CategoryLowCalorie)
	require.NoError(t, err)
	assert.Equal(t, []string{"Banana", "Apple", "Broccoli", "Eggs", "Whole Wheat Bread"}, names(low))

	_, err = c.Filter("dessert")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	counts := c.Categories()
	require.Len(t, counts, 3)
	assert.Equal(t, CategoryCount{ID: CategoryAll, Label: "All Foods", Count: 15}, counts[0])
	assert.Equal(t, 5, counts[1].Count)
	assert.Equal(t, 5, counts[2].Count)

	assert.True(t, IsValidCategory("low-calorie"))
	assert.False(t, IsValidCategory("snacks"))
}

func TestQuery(t *testing.T) {
	c := Default()

	got, err := c.Query("grilled", CategoryHighProtein)
	require.NoError(t, err)
	assert.Equal(t, []string{"Grilled Chicken Salad", "Grilled Chicken Breast"}, names(got))

	got, err = c.Query("E", CategoryLowCalorie)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Eggs", "Whole Wheat Bread"}, names(got))

	got, err = c.Query("", "")
	require.NoError(t, err)
	assert.Len(t, got, 15)

	_, err = c.Query("apple", "dessert")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCatalogIsImmutable(t *testing.T) {
	source := []models.FoodRecord{{ID: "a", Name: "A", Calories: 100, Protein: models.Grams(5)}}
	c := New(source)

	source[0].Name = "changed"
	*source[0].Protein = 99

	all := c.All()
	all[0].Calories = 0

	f, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "A", f.Name)
	assert.Equal(t, 100, f.Calories)
	assert.Equal(t, 5.0, f.ProteinGrams())
}
