package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	capture := api.Group("/capture")
	capture.Get("", handler.GetCapture)
	capture.Post("", handler.StartCapture)
	capture.Post("/retake", handler.RetakeCapture)
	capture.Post("/retry", handler.RetryCapture)
	capture.Post("/confirm", handler.ConfirmCapture)
	capture.Post("/cancel", handler.CancelCapture)

	progress := api.Group("/progress")
	progress.Get("/today", handler.GetToday)
	progress.Get("/week", handler.GetWeek)
	progress.Post("/water", handler.LogWater)
	progress.Post("/exercise", handler.LogExercise)

	api.Delete("/meals/:id", handler.DeleteMeal)

	foods := api.Group("/foods")
	foods.Get("", handler.ListFoods)
	foods.Get("/popular", handler.PopularFoods)
	foods.Get("/recent", handler.RecentFoods)
	foods.Get("/categories", handler.FoodCategories)
	foods.Get("/:id", handler.GetFood)

	api.Get("/profile", handler.GetProfile)
	api.Patch("/profile", handler.UpdateProfile)
}
