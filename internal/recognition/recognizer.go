// ABOUTME: Recognizer interface and error taxonomy for food recognition.
// ABOUTME: Includes a timeout decorator that maps deadlines to ErrTimeout.
package recognition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/calorietrack/internal/models"
)

var (
	// ErrEmptyCatalog means there is no reference data to recognize against.
	ErrEmptyCatalog = errors.New("recognition: food catalog is empty")
	// ErrTimeout means recognition did not finish in time.
	ErrTimeout = errors.New("recognition: timed out")
	// ErrUnavailable means the recognizer could not serve the request.
	ErrUnavailable = errors.New("recognition: unavailable")
)

// Recognizer identifies the food in an image payload.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (*models.RecognitionResult, error)
}

// Retryable reports whether a recognition error is worth retrying.
func Retryable(err error) bool {
	return err != nil && !errors.Is(err, ErrEmptyCatalog)
}

// WithTimeout bounds every Recognize call by d. A zero or negative d disables the bound.
func WithTimeout(r Recognizer, d time.Duration) Recognizer {
	if d <= 0 {
		return r
	}
	return &timeoutRecognizer{next: r, timeout: d}
}

type timeoutRecognizer struct {
	next    Recognizer
	timeout time.Duration
}

func (t *timeoutRecognizer) Recognize(ctx context.Context, image []byte) (*models.RecognitionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	result, err := t.next.Recognize(ctx, image)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w after %s", ErrTimeout, t.timeout)
	}
	return result, err
}
