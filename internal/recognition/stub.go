// ABOUTME: StubRecognizer picks a random catalog food after a fixed delay.
// ABOUTME: Stands in for a model-backed recognizer; the image is never inspected.
package recognition

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/harperreed/calorietrack/internal/models"
)

const (
	// DefaultDelay is the simulated processing time.
	DefaultDelay = 1500 * time.Millisecond

	minConfidence   = 75
	maxConfidence   = 95
	marginOfError   = 50
	suggestionCount = 3
)

// FoodLister supplies the reference foods to pick from.
type FoodLister interface {
	All() []models.FoodRecord
}

// StubRecognizer simulates recognition with a uniform random pick.
type StubRecognizer struct {
	foods FoodLister
	delay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// StubOption configures a StubRecognizer.
type StubOption func(*StubRecognizer)

// WithDelay sets the simulated processing delay.
func WithDelay(d time.Duration) StubOption {
	return func(s *StubRecognizer) { s.delay = d }
}

// WithSeed makes the random picks reproducible.
func WithSeed(seed uint64) StubOption {
	return func(s *StubRecognizer) { s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// NewStubRecognizer creates a stub over the given foods.
func NewStubRecognizer(foods FoodLister, opts ...StubOption) *StubRecognizer {
	s := &StubRecognizer{
		foods: foods,
		delay: DefaultDelay,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Recognize waits out the delay, then returns a random food with a confidence in [75, 95].
func (s *StubRecognizer) Recognize(ctx context.Context, image []byte) (*models.RecognitionResult, error) {
	foods := s.foods.All()
	if len(foods) == 0 {
		return nil, ErrEmptyCatalog
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	pick := foods[s.rng.IntN(len(foods))]
	confidence := minConfidence + s.rng.IntN(maxConfidence-minConfidence+1)
	s.mu.Unlock()

	n := suggestionCount
	if n > len(foods) {
		n = len(foods)
	}

	return &models.RecognitionResult{
		FoodName:      pick.Name,
		Confidence:    confidence,
		Calories:      pick.Calories,
		Portion:       pick.Portion,
		MarginOfError: marginOfError,
		Suggestions:   foods[:n],
		Food:          &pick,
	}, nil
}
