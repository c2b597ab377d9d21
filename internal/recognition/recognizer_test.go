// ABOUTME: Tests for the stub recognizer and timeout decorator.
// ABOUTME: Checks confidence bounds, fixed suggestions, and error mapping.
package recognition

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/harperreed/calorietrack/internal/catalog"
	"github.com/harperreed/calorietrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubRecognizerResult(t *testing.T) {
	cat := catalog.Default()
	r := NewStubRecognizer(cat, WithDelay(0), WithSeed(42))

	for i := 0; i < 200; i++ {
		res, err := r.Recognize(context.Background(), []byte("img"))
		require.NoError(t, err)

		assert.GreaterOrEqual(t, res.Confidence, 75)
		assert.LessOrEqual(t, res.Confidence, 95)
		assert.Equal(t, 50, res.MarginOfError)

		food, ok := cat.FindByName(res.FoodName)
		require.True(t, ok, "unknown food %q", res.FoodName)
		assert.Equal(t, food.Calories, res.Calories)
		assert.Equal(t, food.Portion, res.Portion)
		require.NotNil(t, res.Food)
		assert.Equal(t, food.ID, res.Food.ID)

		require.Len(t, res.Suggestions, 3)
		assert.Equal(t, "Avocado Toast", res.Suggestions[0].Name)
		assert.Equal(t, "Grilled Chicken Salad", res.Suggestions[1].Name)
		assert.Equal(t, "Greek Yogurt", res.Suggestions[2].Name)
	}
}

func TestStubRecognizerCoversRange(t *testing.T) {
	r := NewStubRecognizer(catalog.Default(), WithDelay(0), WithSeed(7))

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		res, err := r.Recognize(context.Background(), nil)
		require.NoError(t, err)
		seen[res.Confidence] = true
	}
	assert.True(t, seen[75], "expected 75 to be produced")
	assert.True(t, seen[95], "expected 95 to be produced")
}

func TestStubRecognizerSeedIsReproducible(t *testing.T) {
	a := NewStubRecognizer(catalog.Default(), WithDelay(0), WithSeed(99))
	b := NewStubRecognizer(catalog.Default(), WithDelay(0), WithSeed(99))

	for i := 0; i < 10; i++ {
		ra, err := a.Recognize(context.Background(), nil)
		require.NoError(t, err)
		rb, err := b.Recognize(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, ra.FoodName, rb.FoodName)
		assert.Equal(t, ra.Confidence, rb.Confidence)
	}
}

func TestStubRecognizerSmallCatalogSuggestions(t *testing.T) {
	cat := catalog.New([]models.FoodRecord{{ID: "a", Name: "Apple", Calories: 95}})
	r := NewStubRecognizer(cat, WithDelay(0))

	res, err := r.Recognize(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Apple", res.FoodName)
	assert.Len(t, res.Suggestions, 1)
}

func TestStubRecognizerEmptyCatalog(t *testing.T) {
	r := NewStubRecognizer(catalog.New(nil), WithDelay(time.Hour))

	_, err := r.Recognize(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrEmptyCatalog))
	assert.False(t, Retryable(err))
}

func TestStubRecognizerHonoursCancel(t *testing.T) {
	r := NewStubRecognizer(catalog.Default(), WithDelay(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Recognize(ctx, nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestStubRecognizerWaitsForDelay(t *testing.T) {
	r := NewStubRecognizer(catalog.Default(), WithDelay(30*time.Millisecond))

	start := time.Now()
	_, err := r.Recognize(context.Background(), nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestWithTimeout(t *testing.T) {
	slow := NewStubRecognizer(catalog.Default(), WithDelay(time.Hour))
	r := WithTimeout(slow, 20*time.Millisecond)

	_, err := r.Recognize(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.True(t, Retryable(err))
}

func TestWithTimeoutPassesThrough(t *testing.T) {
	fast := NewStubRecognizer(catalog.Default(), WithDelay(0))
	r := WithTimeout(fast, time.Second)

	res, err := r.Recognize(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, res.FoodName)

	empty := WithTimeout(NewStubRecognizer(catalog.New(nil)), time.Second)
	_, err = empty.Recognize(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrEmptyCatalog))
}

func TestWithTimeoutDisabled(t *testing.T) {
	inner := NewStubRecognizer(catalog.Default())
	assert.Same(t, Recognizer(inner), WithTimeout(inner, 0))
}
