package handler

import (
	"net/http"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ProjectHandler struct {
	Handler
	projectService *service.ProjectService
}

func NewProjectHandler(s *server.Server, projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		Handler:        NewHandler(s),
		projectService: projectService,
	}
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.CreateProjectPayload) (*model.Project, error) {
		return h.projectService.CreateProject(c.Request().Context(), payload)
	}, http.StatusOK, "New project added successfully")(c)
}

func (h *ProjectHandler) GetProjects(c echo.Context) error {
	return HandleList(h.Handler, func(c echo.Context, _ *model.ReadPayload) ([]model.Project, error) {
		return h.projectService.GetProjects(c.Request().Context())
	}, "Project data fetched successfully", "No project data found")(c)
}

func (h *ProjectHandler) GetProjectBySlug(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.GetProjectBySlugPayload) (*model.Project, error) {
		return h.projectService.GetProjectBySlug(c.Request().Context(), payload.NavLink)
	}, http.StatusOK, "Project data fetched successfully")(c)
}

func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.UpdateProjectPayload) (*model.Project, error) {
		return h.projectService.UpdateProject(c.Request().Context(), payload)
	}, http.StatusOK, "Project updated successfully")(c)
}
