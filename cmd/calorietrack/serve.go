// ABOUTME: CLI command for serving the HTTP JSON API.
// ABOUTME: Runs Fiber plus the midnight day rollover until SIGINT/SIGTERM.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harperreed/calorietrack/internal/api"
	"github.com/harperreed/calorietrack/internal/daylog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveListen    string
	serveAccessLog bool
)

var serveCmd = &cobra.Command{
	Use:         "serve",
	Short:       "Serve the HTTP JSON API",
	Annotations: map[string]string{annotationLogs: "full"},
	Long: `Serve the capture, progress, foods, and profile views over HTTP.

ENDPOINTS:

  GET    /healthz                   Liveness
  GET    /api/capture               Capture workflow state
  POST   /api/capture               Start recognition   {"image": "<base64>"}
  POST   /api/capture/retake        Replace the image under review
  POST   /api/capture/retry         Retry after a timeout
  POST   /api/capture/confirm       Log the reviewed meal
  POST   /api/capture/cancel        Discard the capture
  GET    /api/progress/today        Calories, macros, meals
  GET    /api/progress/week         Weekly stats and insights
  POST   /api/progress/water        {"glasses": 1}
  POST   /api/progress/exercise     {"calories": 300}
  DELETE /api/meals/:id             Delete a meal by ID or prefix
  GET    /api/foods                 ?q=&category=
  GET    /api/foods/popular         ?limit=
  GET    /api/foods/recent          ?limit=
  GET    /api/foods/categories      Category counts
  GET    /api/foods/:id             One food
  GET    /api/profile               Profile, weekly stats, achievements
  PATCH  /api/profile               Edit profile fields

  Capture endpoints accept ?wait=1 to block until recognition settles.

EXAMPLES:

  calorietrack serve                    # Listen on the configured address
  calorietrack serve --listen :9090     # Custom address
  calorietrack serve --access-log       # Log every request to stderr`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listen := cfg.GetListen()
		if serveListen != "" {
			listen = serveListen
		}

		appCfg := api.AppConfig{}
		if serveAccessLog {
			appCfg.RequestLog = os.Stderr
		}
		app := api.NewApp(api.NewHandler(sess), appCfg)

		rollover := daylog.NewRolloverScheduler(sess.Store, sess.Location, logger.Named("rollover"))
		if err := rollover.Start(); err != nil {
			return err
		}
		defer rollover.Stop()

		sigCtx, stopSignals := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stopSignals()

		go func() {
			<-sigCtx.Done()
			sess.Workflow.Cancel()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := app.ShutdownWithContext(shutdownCtx); err != nil {
				logger.Error("server shutdown failed", zap.Error(err))
			}
		}()

		logger.Info("calorietrack listening",
			zap.String("addr", listen),
			zap.String("tz", sess.Location.String()),
			zap.Int("calorie_goal", sess.Store.Today().CalorieGoal),
		)
		if err := app.Listen(listen); err != nil {
			return err
		}
		logger.Info("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (default from config, :8080)")
	serveCmd.Flags().BoolVar(&serveAccessLog, "access-log", false, "log every request to stderr")
	rootCmd.AddCommand(serveCmd)
}
