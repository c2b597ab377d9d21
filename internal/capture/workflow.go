// ABOUTME: Capture workflow state machine: acquire, recognize, review, confirm.
// ABOUTME: Sequence numbers drop recognition results superseded by a newer capture.
package capture

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/harperreed/calorietrack/internal/models"
	"github.com/harperreed/calorietrack/internal/recognition"
	"go.uber.org/zap"
)

// State is the workflow's current phase.
type State string

const (
	StateIdle      State = "idle"
	StateCaptured  State = "captured"
	StateReviewing State = "reviewing"
	StateFailed    State = "failed"
)

var (
	// ErrNoImageSelected means acquisition produced no image; nothing changes.
	ErrNoImageSelected = errors.New("no image selected")
	// ErrInvalidTransition means the action is not allowed in the current state.
	ErrInvalidTransition = errors.New("invalid capture transition")
	// ErrNotRetryable means the last failure cannot be retried.
	ErrNotRetryable = errors.New("capture failure is not retryable")
)

// MealSink owns the day's meal list and accepts confirmed results.
type MealSink interface {
	LogConfirmed(c models.Confirmation) (models.MealRecord, error)
}

// Snapshot is a point-in-time view of the workflow for rendering.
type Snapshot struct {
	State      State                     `json:"state"`
	Processing bool                      `json:"processing"`
	ImageRef   string                    `json:"image_ref,omitempty"`
	ImageSize  int                       `json:"image_size,omitempty"`
	Result     *models.RecognitionResult `json:"result,omitempty"`
	Error      string                    `json:"error,omitempty"`
	Retryable  bool                      `json:"retryable,omitempty"`
	Sequence   uint64                    `json:"sequence"`
}

// Workflow coordinates one capture at a time for a single session.
type Workflow struct {
	recognizer recognition.Recognizer
	sink       MealSink
	log        *zap.Logger

	mu      sync.Mutex
	state   State
	image   *Image
	result  *models.RecognitionResult
	err     error
	seq     uint64
	cancel  context.CancelFunc
	changed chan struct{}
}

// NewWorkflow creates an idle workflow.
func NewWorkflow(r recognition.Recognizer, sink MealSink, log *zap.Logger) *Workflow {
	if log == nil {
		log = zap.NewNop()
	}
	return &Workflow{
		recognizer: r,
		sink:       sink,
		log:        log,
		state:      StateIdle,
		changed:    make(chan struct{}),
	}
}

// Acquire stores an image and starts recognition, superseding any capture in progress.
func (w *Workflow) Acquire(img Image) error {
	if img.Empty() {
		return ErrNoImageSelected
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.start(img)
	return nil
}

// AcquireFrom asks src for an image and acquires it.
func (w *Workflow) AcquireFrom(ctx context.Context, src ImageSource) error {
	img, err := src.Acquire(ctx)
	if err != nil {
		return err
	}
	return w.Acquire(img)
}

// Retake discards the current result and recognizes a new image.
func (w *Workflow) Retake(img Image) error {
	if img.Empty() {
		return ErrNoImageSelected
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateReviewing && w.state != StateFailed {
		return fmt.Errorf("%w: retake from %s", ErrInvalidTransition, w.state)
	}
	w.start(img)
	return nil
}

// Retry re-runs recognition on the image of a failed capture.
func (w *Workflow) Retry() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateFailed || w.image == nil {
		return fmt.Errorf("%w: retry from %s", ErrInvalidTransition, w.state)
	}
	if !recognition.Retryable(w.err) {
		return ErrNotRetryable
	}
	w.start(*w.image)
	return nil
}

// Confirm hands the reviewed result to the sink and resets to idle.
func (w *Workflow) Confirm() (models.MealRecord, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateReviewing || w.result == nil {
		return models.MealRecord{}, fmt.Errorf("%w: confirm from %s", ErrInvalidTransition, w.state)
	}

	meal, err := w.sink.LogConfirmed(w.result.Confirmation())
	if err != nil {
		return models.MealRecord{}, fmt.Errorf("log confirmed meal: %w", err)
	}

	w.log.Info("capture confirmed",
		zap.String("meal_id", meal.ID),
		zap.String("food", meal.Food.Name),
		zap.Int("calories", meal.Food.Calories),
		zap.String("meal_type", string(meal.MealType)),
	)
	w.reset(nil)
	return meal, nil
}

// Cancel discards any image, result, or in-flight request and returns to idle.
func (w *Workflow) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateIdle && w.err == nil {
		return
	}
	w.log.Debug("capture cancelled", zap.String("from", string(w.state)), zap.Uint64("seq", w.seq))
	w.reset(nil)
}

// Snapshot returns the current state.
func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

// Await blocks until no recognition is in flight, then returns the state.
func (w *Workflow) Await(ctx context.Context) (Snapshot, error) {
	for {
		w.mu.Lock()
		if w.state != StateCaptured {
			snap := w.snapshot()
			w.mu.Unlock()
			return snap, nil
		}
		ch := w.changed
		w.mu.Unlock()

		select {
		case <-ctx.Done():
			return w.Snapshot(), ctx.Err()
		case <-ch:
		}
	}
}

// start must be called with mu held.
func (w *Workflow) start(img Image) {
	if w.cancel != nil {
		w.cancel()
	}
	w.seq++
	seq := w.seq

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.state = StateCaptured
	w.image = &img
	w.result = nil
	w.err = nil
	w.notify()

	w.log.Debug("recognition started", zap.Uint64("seq", seq), zap.String("image", img.Ref), zap.Int("bytes", len(img.Data)))
	go w.recognize(ctx, seq, img.Data)
}

func (w *Workflow) recognize(ctx context.Context, seq uint64, data []byte) {
	result, err := w.recognizer.Recognize(ctx, data)

	w.mu.Lock()
	defer w.mu.Unlock()

	if seq != w.seq {
		w.log.Debug("discarding stale recognition result", zap.Uint64("seq", seq), zap.Uint64("current", w.seq))
		return
	}
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}

	switch {
	case err == nil && result == nil:
		err = recognition.ErrUnavailable
		fallthrough
	case err != nil:
		if !recognition.Retryable(err) {
			w.log.Error("recognition failed", zap.Uint64("seq", seq), zap.Error(err))
			w.reset(err)
			return
		}
		w.log.Warn("recognition failed, retry available", zap.Uint64("seq", seq), zap.Error(err))
		w.state = StateFailed
		w.err = err
	default:
		w.log.Debug("recognition resolved",
			zap.Uint64("seq", seq),
			zap.String("food", result.FoodName),
			zap.Int("confidence", result.Confidence),
		)
		w.state = StateReviewing
		w.result = result
	}
	w.notify()
}

// reset must be called with mu held. A non-nil err stays visible in idle.
func (w *Workflow) reset(err error) {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.seq++
	w.state = StateIdle
	w.image = nil
	w.result = nil
	w.err = err
	w.notify()
}

func (w *Workflow) notify() {
	close(w.changed)
	w.changed = make(chan struct{})
}

func (w *Workflow) snapshot() Snapshot {
	s := Snapshot{
		State:      w.state,
		Processing: w.state == StateCaptured,
		Sequence:   w.seq,
	}
	if w.image != nil {
		s.ImageRef = w.image.Ref
		s.ImageSize = len(w.image.Data)
	}
	if w.result != nil {
		r := *w.result
		s.Result = &r
	}
	if w.err != nil {
		s.Error = w.err.Error()
		s.Retryable = w.state == StateFailed && recognition.Retryable(w.err)
	}
	return s
}
