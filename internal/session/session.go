// ABOUTME: A session wires the catalog, recognizer, day store, and capture workflow.
// ABOUTME: Every surface (CLI, HTTP, MCP) runs against exactly one session.
package session

import (
	"fmt"
	"time"

	"github.com/harperreed/calorietrack/internal/capture"
	"github.com/harperreed/calorietrack/internal/catalog"
	"github.com/harperreed/calorietrack/internal/config"
	"github.com/harperreed/calorietrack/internal/daylog"
	"github.com/harperreed/calorietrack/internal/recognition"
	"go.uber.org/zap"
)

// Options configures a session.
type Options struct {
	CalorieGoal        int
	RecognitionDelay   time.Duration
	RecognitionTimeout time.Duration
	Seed               uint64
	StartEmpty         bool
	Location           *time.Location
	Clock              func() time.Time
	Catalog            *catalog.Catalog
	Recognizer         recognition.Recognizer
	Logger             *zap.Logger
}

// Session is one process-lifetime tracking session.
type Session struct {
	Catalog  *catalog.Catalog
	Store    *daylog.Store
	Workflow *capture.Workflow
	Location *time.Location
	Log      *zap.Logger
}

// OptionsFromConfig converts a loaded config into session options.
func OptionsFromConfig(cfg *config.Config, log *zap.Logger) (Options, error) {
	delay, err := cfg.GetRecognitionDelay()
	if err != nil {
		return Options{}, err
	}
	timeout, err := cfg.GetRecognitionTimeout()
	if err != nil {
		return Options{}, err
	}
	loc, err := cfg.GetLocation()
	if err != nil {
		return Options{}, err
	}
	return Options{
		CalorieGoal:        cfg.GetCalorieGoal(),
		RecognitionDelay:   delay,
		RecognitionTimeout: timeout,
		Seed:               cfg.Seed,
		StartEmpty:         cfg.StartEmpty,
		Location:           loc,
		Logger:             log,
	}, nil
}

// New builds a session. Unless StartEmpty is set the day is seeded with demo data.
func New(opts Options) (*Session, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	clock := opts.Clock
	if clock == nil {
		clock = func() time.Time { return time.Now().In(loc) }
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	storeOpts := daylog.Options{
		CalorieGoal: opts.CalorieGoal,
		Clock:       clock,
		Logger:      log.Named("daylog"),
		Foods:       cat,
	}
	if !opts.StartEmpty {
		seeded, err := daylog.DemoOptions(storeOpts, clock(), cat)
		if err != nil {
			return nil, fmt.Errorf("seed demo day: %w", err)
		}
		storeOpts = seeded
	}
	store, err := daylog.New(storeOpts)
	if err != nil {
		return nil, fmt.Errorf("create day store: %w", err)
	}

	rec := opts.Recognizer
	if rec == nil {
		stubOpts := []recognition.StubOption{recognition.WithDelay(opts.RecognitionDelay)}
		if opts.Seed != 0 {
			stubOpts = append(stubOpts, recognition.WithSeed(opts.Seed))
		}
		rec = recognition.NewStubRecognizer(cat, stubOpts...)
	}
	rec = recognition.WithTimeout(rec, opts.RecognitionTimeout)

	log.Debug("session ready",
		zap.Int("foods", cat.Len()),
		zap.Int("meals", len(store.Today().Meals)),
		zap.String("location", loc.String()),
	)

	return &Session{
		Catalog:  cat,
		Store:    store,
		Workflow: capture.NewWorkflow(rec, store, log.Named("capture")),
		Location: loc,
		Log:      log,
	}, nil
}
