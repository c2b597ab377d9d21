package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/harperreed/calorietrack/internal/capture"
	"github.com/harperreed/calorietrack/internal/catalog"
	"github.com/harperreed/calorietrack/internal/daylog"
	"github.com/harperreed/calorietrack/internal/models"
	"go.uber.org/zap"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// domainError maps package sentinels to HTTP statuses.
func (handler *Handler) domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, capture.ErrNoImageSelected),
		errors.Is(err, catalog.ErrUnknownCategory):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, daylog.ErrMealNotFound),
		errors.Is(err, catalog.ErrFoodNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, capture.ErrInvalidTransition),
		errors.Is(err, capture.ErrNotRetryable),
		errors.Is(err, daylog.ErrAmbiguousID):
		return apiError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, models.ErrInvalidGoal),
		errors.Is(err, daylog.ErrInvalidAmount),
		errors.Is(err, daylog.ErrInvalidProfile),
		errors.Is(err, daylog.ErrInvalidConfirmation):
		return apiError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		handler.log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

// parseBody decodes and validates a JSON request body. The returned
// *fiber.Error is rendered by the app's error handler.
func (handler *Handler) parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := handler.validate.Struct(out); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return "validation: " + strings.Join(parts, ", ")
}

func wantsWait(c *fiber.Ctx) bool {
	switch strings.ToLower(c.Query("wait")) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func queryLimit(c *fiber.Ctx, def int) (int, error) {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 100 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "limit must be between 1 and 100")
	}
	return n, nil
}
