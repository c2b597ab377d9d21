// ABOUTME: HTTP JSON API over one session, served with Fiber.
// ABOUTME: Builds the app with recover and request-logging middleware.
package api

import (
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/harperreed/calorietrack/internal/session"
	"go.uber.org/zap"
)

// DefaultWaitTimeout bounds ?wait=1 requests that block on recognition.
const DefaultWaitTimeout = 30 * time.Second

// Handler serves the capture, progress, foods, and profile views.
type Handler struct {
	session     *session.Session
	log         *zap.Logger
	validate    *validator.Validate
	waitTimeout time.Duration
}

// NewHandler creates a handler for s.
func NewHandler(s *session.Session) *Handler {
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		session:     s,
		log:         log.Named("api"),
		validate:    validator.New(),
		waitTimeout: DefaultWaitTimeout,
	}
}

// AppConfig tunes the Fiber app.
type AppConfig struct {
	// RequestLog receives one access-log line per request. Nil disables it.
	RequestLog io.Writer
}

// NewApp builds a Fiber app with every route registered.
func NewApp(handler *Handler, cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "CalorieTrack",
		DisableStartupMessage: true,
		ErrorHandler:          handler.errorHandler,
	})

	app.Use(recover.New())
	if cfg.RequestLog != nil {
		app.Use(logger.New(logger.Config{
			Output: cfg.RequestLog,
			Format: "${time} ${status} ${method} ${path} ${latency}\n",
		}))
	}

	RegisterRoutes(app, handler)
	return app
}

// Health reports liveness.
func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if fe, ok := err.(*fiber.Error); ok {
		status = fe.Code
	}
	if status >= fiber.StatusInternalServerError {
		handler.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return apiError(c, status, "internal error")
	}
	return apiError(c, status, err.Error())
}
