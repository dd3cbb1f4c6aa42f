package handler

import (
	"net/http"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ExperienceHandler struct {
	Handler
	experienceService *service.ExperienceService
}

func NewExperienceHandler(s *server.Server, experienceService *service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{
		Handler:           NewHandler(s),
		experienceService: experienceService,
	}
}

func (h *ExperienceHandler) CreateExperience(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.CreateExperiencePayload) (*model.Experience, error) {
		return h.experienceService.CreateExperience(c.Request().Context(), payload)
	}, http.StatusOK, "New experience added successfully")(c)
}

func (h *ExperienceHandler) GetExperiences(c echo.Context) error {
	return HandleList(h.Handler, func(c echo.Context, _ *model.ReadPayload) ([]model.Experience, error) {
		return h.experienceService.GetExperiences(c.Request().Context())
	}, "Experience data fetched successfully", "No experience data found")(c)
}

func (h *ExperienceHandler) GetExperience(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.GetExperiencePayload) (*model.Experience, error) {
		return h.experienceService.GetExperience(c.Request().Context(), payload)
	}, http.StatusOK, "Experience data fetched successfully")(c)
}

func (h *ExperienceHandler) UpdateExperience(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.UpdateExperiencePayload) (*model.Experience, error) {
		return h.experienceService.UpdateExperience(c.Request().Context(), payload)
	}, http.StatusOK, "Experience updated successfully")(c)
}
