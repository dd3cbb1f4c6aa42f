package handler

import (
	"net/http"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type AchievementHandler struct {
	Handler
	achievementService *service.AchievementService
}

func NewAchievementHandler(s *server.Server, achievementService *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{
		Handler:            NewHandler(s),
		achievementService: achievementService,
	}
}

func (h *AchievementHandler) CreateAchievement(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.CreateAchievementPayload) (*model.Achievement, error) {
		return h.achievementService.CreateAchievement(c.Request().Context(), payload)
	}, http.StatusOK, "New achievement added successfully")(c)
}

func (h *AchievementHandler) GetAchievements(c echo.Context) error {
	return HandleList(h.Handler, func(c echo.Context, _ *model.ReadPayload) ([]model.Achievement, error) {
		return h.achievementService.GetAchievements(c.Request().Context())
	}, "Achievement data fetched successfully", "No achievement data found")(c)
}

func (h *AchievementHandler) GetAchievement(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.GetAchievementPayload) (*model.Achievement, error) {
		return h.achievementService.GetAchievement(c.Request().Context(), payload)
	}, http.StatusOK, "Achievement data fetched successfully")(c)
}

func (h *AchievementHandler) UpdateAchievement(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.UpdateAchievementPayload) (*model.Achievement, error) {
		return h.achievementService.UpdateAchievement(c.Request().Context(), payload)
	}, http.StatusOK, "Achievement updated successfully")(c)
}
