package api

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/harperreed/calorietrack/internal/capture"
	"github.com/harperreed/calorietrack/internal/models"
)

type captureRequest struct {
	// Image is base64 or a data: URI. Empty means nothing was selected.
	Image string `json:"image"`
	Ref   string `json:"ref" validate:"omitempty,max=255"`
}

type confirmResponse struct {
	Meal     models.MealRecord    `json:"meal"`
	Progress models.DailyProgress `json:"progress"`
}

func (handler *Handler) GetCapture(c *fiber.Ctx) error {
	return handler.respondSnapshot(c, fiber.StatusOK)
}

func (handler *Handler) StartCapture(c *fiber.Ctx) error {
	img, err := handler.parseImage(c)
	if err != nil {
		return err
	}
	if err := handler.session.Workflow.Acquire(img); err != nil {
		return handler.domainError(c, err)
	}
	return handler.respondSnapshot(c, fiber.StatusAccepted)
}

func (handler *Handler) RetakeCapture(c *fiber.Ctx) error {
	img, err := handler.parseImage(c)
	if err != nil {
		return err
	}
	if err := handler.session.Workflow.Retake(img); err != nil {
		return handler.domainError(c, err)
	}
	return handler.respondSnapshot(c, fiber.StatusAccepted)
}

func (handler *Handler) RetryCapture(c *fiber.Ctx) error {
	if err := handler.session.Workflow.Retry(); err != nil {
		return handler.domainError(c, err)
	}
	return handler.respondSnapshot(c, fiber.StatusAccepted)
}

func (handler *Handler) ConfirmCapture(c *fiber.Ctx) error {
	meal, err := handler.session.Workflow.Confirm()
	if err != nil {
		return handler.domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(confirmResponse{
		Meal:     meal,
		Progress: handler.session.Store.Today(),
	})
}

func (handler *Handler) CancelCapture(c *fiber.Ctx) error {
	handler.session.Workflow.Cancel()
	return c.JSON(handler.session.Workflow.Snapshot())
}

func (handler *Handler) parseImage(c *fiber.Ctx) (capture.Image, error) {
	var req captureRequest
	if err := handler.parseBody(c, &req); err != nil {
		return capture.Image{}, err
	}
	img, err := capture.ParseImage(req.Image, req.Ref)
	if err != nil {
		return capture.Image{}, imageError(err)
	}
	return img, nil
}

func imageError(err error) error {
	if errors.Is(err, capture.ErrNoImageSelected) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return fiber.NewError(fiber.StatusBadRequest, "invalid image: "+err.Error())
}

// respondSnapshot writes the workflow state, first waiting for recognition
// when the request carries ?wait=1.
func (handler *Handler) respondSnapshot(c *fiber.Ctx, status int) error {
	wf := handler.session.Workflow
	if !wantsWait(c) {
		return c.Status(status).JSON(wf.Snapshot())
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), handler.waitTimeout)
	defer cancel()
	snap, _ := wf.Await(ctx)
	return c.Status(fiber.StatusOK).JSON(snap)
}
