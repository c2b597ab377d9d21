package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harperreed/calorietrack/internal/daylog"
	"github.com/harperreed/calorietrack/internal/models"
)

type profilePatchRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Email         *string  `json:"email" validate:"omitempty,email"`
	CalorieGoal   *int     `json:"calorie_goal" validate:"omitempty,gte=1,lte=20000"`
	Weight        *float64 `json:"weight" validate:"omitempty,gt=0,lte=2000"`
	Height        *float64 `json:"height" validate:"omitempty,gt=0,lte=120"`
	Age           *int     `json:"age" validate:"omitempty,gte=1,lte=150"`
	ActivityLevel *string  `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
}

type profileResponse struct {
	Profile      models.UserProfile   `json:"profile"`
	Initials     string               `json:"initials"`
	Achievements []models.Achievement `json:"achievements"`
	Weekly       models.WeeklyStats   `json:"weekly"`
}

func (handler *Handler) profileView() profileResponse {
	store := handler.session.Store
	profile := store.Profile()
	return profileResponse{
		Profile:      profile,
		Initials:     profile.Initials(),
		Achievements: store.Achievements(),
		Weekly:       store.Weekly(),
	}
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	return c.JSON(handler.profileView())
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	var req profilePatchRequest
	if err := handler.parseBody(c, &req); err != nil {
		return err
	}
	_, err := handler.session.Store.UpdateProfile(daylog.ProfilePatch{
		Name:          req.Name,
		Email:         req.Email,
		CalorieGoal:   req.CalorieGoal,
		Weight:        req.Weight,
		Height:        req.Height,
		Age:           req.Age,
		ActivityLevel: req.ActivityLevel,
	})
	if err != nil {
		return handler.domainError(c, err)
	}
	return c.JSON(handler.profileView())
}
