package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harperreed/calorietrack/internal/models"
	"github.com/harperreed/calorietrack/internal/progress"
)

type waterRequest struct {
	Glasses int `json:"glasses" validate:"required,gte=1,lte=50"`
}

type exerciseRequest struct {
	Calories int `json:"calories" validate:"required,gte=1,lte=10000"`
}

func (handler *Handler) GetToday(c *fiber.Ctx) error {
	return c.JSON(progress.Today(handler.session.Store.Today()))
}

func (handler *Handler) GetWeek(c *fiber.Ctx) error {
	return c.JSON(progress.Week(handler.session.Store.Weekly()))
}

func (handler *Handler) LogWater(c *fiber.Ctx) error {
	var req waterRequest
	if err := handler.parseBody(c, &req); err != nil {
		return err
	}
	total, err := handler.session.Store.AddWater(req.Glasses)
	if err != nil {
		return handler.domainError(c, err)
	}
	return c.JSON(fiber.Map{"water_intake": total})
}

func (handler *Handler) LogExercise(c *fiber.Ctx) error {
	var req exerciseRequest
	if err := handler.parseBody(c, &req); err != nil {
		return err
	}
	total, err := handler.session.Store.AddExercise(req.Calories)
	if err != nil {
		return handler.domainError(c, err)
	}
	return c.JSON(fiber.Map{"exercise_calories": total})
}

func (handler *Handler) DeleteMeal(c *fiber.Ctx) error {
	removed, err := handler.session.Store.DeleteMeal(c.Params("id"))
	if err != nil {
		return handler.domainError(c, err)
	}
	return c.JSON(struct {
		Deleted  models.MealRecord    `json:"deleted"`
		Progress models.DailyProgress `json:"progress"`
	}{removed, handler.session.Store.Today()})
}
