// ABOUTME: Midnight job that rolls the day store over to a fresh day.
// ABOUTME: Runs on robfig/cron in the configured time zone while serving.
package daylog

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RolloverSchedule fires at local midnight.
const RolloverSchedule = "0 0 * * *"

// RolloverScheduler periodically starts a new day on the store.
type RolloverScheduler struct {
	store *Store
	cron  *cron.Cron
	log   *zap.Logger
}

// NewRolloverScheduler creates a scheduler evaluated in loc.
func NewRolloverScheduler(store *Store, loc *time.Location, log *zap.Logger) *RolloverScheduler {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RolloverScheduler{
		store: store,
		cron:  cron.New(cron.WithLocation(loc)),
		log:   log,
	}
}

// Start registers the midnight job and starts the cron runner.
func (r *RolloverScheduler) Start() error {
	if _, err := r.cron.AddFunc(RolloverSchedule, r.run); err != nil {
		return fmt.Errorf("failed to add rollover job: %w", err)
	}
	r.cron.Start()
	r.log.Info("day rollover scheduled", zap.String("schedule", RolloverSchedule))
	return nil
}

// Stop waits for a running job, then stops the runner.
func (r *RolloverScheduler) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.log.Info("day rollover stopped")
}

func (r *RolloverScheduler) run() {
	if !r.store.Rollover(r.store.Now()) {
		r.log.Debug("rollover skipped, day unchanged")
	}
}
