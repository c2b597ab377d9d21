// ABOUTME: Root Cobra command for calorietrack CLI.
// ABOUTME: Builds config, logger, and the tracking session via PersistentPreRunE.
package main

import (
	"fmt"

	"github.com/harperreed/calorietrack/internal/config"
	"github.com/harperreed/calorietrack/internal/logging"
	"github.com/harperreed/calorietrack/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	// annotationLogs marks commands that keep the configured log level.
	// Other commands only log warnings so their output stays readable.
	annotationLogs = "logs"
	// annotationNoSession marks commands that run without a session.
	annotationNoSession = "no-session"
)

var (
	cfg    *config.Config
	logger *zap.Logger
	sess   *session.Session

	flagEmpty    bool
	flagSeed     uint64
	flagGoal     int
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "calorietrack",
	Short: "Photo-based calorie tracker",
	Long: `CalorieTrack estimates calories from food photos and tracks your day.

HOW IT WORKS:

  1. Capture a photo of your meal
  2. Review the recognized food, calories, and portion
  3. Confirm to log it, retake with another photo, or cancel

  Every session starts with a demo day (four meals, water, exercise) unless
  --empty is set. State lives in memory for the life of the process.

QUICK START:

  $ calorietrack capture lunch.jpg          # Recognize and log a meal
  $ calorietrack progress                   # Calories, macros, meal types
  $ calorietrack progress week              # Weekly stats and insights
  $ calorietrack foods search chicken       # Search the food catalog
  $ calorietrack foods --category high-protein
  $ calorietrack profile                    # Profile and achievements
  $ calorietrack export markdown            # Export today's log

SERVERS:

  $ calorietrack serve                      # HTTP JSON API on :8080
  $ calorietrack mcp                        # MCP server over stdio

CONFIGURATION:

  Settings are read from ~/.config/calorietrack/config.json, or from the
  path in CALORIETRACK_CONFIG. Run 'calorietrack config' to see them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip session init for commands that don't need it
		if cmd.Name() == "help" || cmd.Annotations[annotationNoSession] != "" {
			return nil
		}
		return initSession(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			_ = logger.Sync()
		}
		return nil
	},
}

func initSession(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if flagGoal > 0 {
		cfg.CalorieGoal = flagGoal
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := cfg.GetLogLevel()
	switch {
	case flagLogLevel != "":
		level = flagLogLevel
	case cmd.Annotations[annotationLogs] == "":
		level = "warn"
	}
	logger, err = logging.New(level, cfg.GetLogFormat())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	opts, err := session.OptionsFromConfig(cfg, logger)
	if err != nil {
		return err
	}
	if flagEmpty {
		opts.StartEmpty = true
	}
	if flagSeed != 0 {
		opts.Seed = flagSeed
	}

	sess, err = session.New(opts)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagEmpty, "empty", false, "start with an empty day instead of demo data")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "fix the recognizer's random seed")
	rootCmd.PersistentFlags().IntVar(&flagGoal, "goal", 0, "override the daily calorie goal")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
}
