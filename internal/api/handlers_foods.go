package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harperreed/calorietrack/internal/catalog"
	"github.com/harperreed/calorietrack/internal/models"
)

type foodsResponse struct {
	Foods []models.FoodRecord `json:"foods"`
	Count int                 `json:"count"`
}

func foodList(foods []models.FoodRecord) foodsResponse {
	return foodsResponse{Foods: foods, Count: len(foods)}
}

func (handler *Handler) ListFoods(c *fiber.Ctx) error {
	foods, err := handler.session.Catalog.Query(c.Query("q"), catalog.Category(c.Query("category")))
	if err != nil {
		return handler.domainError(c, err)
	}
	return c.JSON(foodList(foods))
}

func (handler *Handler) PopularFoods(c *fiber.Ctx) error {
	limit, err := queryLimit(c, catalog.DefaultPopularLimit)
	if err != nil {
		return err
	}
	return c.JSON(foodList(handler.session.Catalog.Popular(limit)))
}

func (handler *Handler) RecentFoods(c *fiber.Ctx) error {
	limit, err := queryLimit(c, catalog.DefaultRecentLimit)
	if err != nil {
		return err
	}
	return c.JSON(foodList(handler.session.Catalog.Recent(limit)))
}

func (handler *Handler) FoodCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": handler.session.Catalog.Categories()})
}

func (handler *Handler) GetFood(c *fiber.Ctx) error {
	food, err := handler.session.Catalog.Get(c.Params("id"))
	if err != nil {
		return handler.domainError(c, err)
	}
	return c.JSON(food)
}
