package handler

import (
	"net/http"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// ContentHandler serves the derived, read-only views of the site.
type ContentHandler struct {
	Handler
	contentService *service.ContentService
}

func NewContentHandler(s *server.Server, contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{
		Handler:        NewHandler(s),
		contentService: contentService,
	}
}

func (h *ContentHandler) GetOverview(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *model.ReadPayload) (*model.Overview, error) {
		return h.contentService.GetOverview(c.Request().Context())
	}, http.StatusOK, "Overview data fetched")(c)
}

func (h *ContentHandler) GetSearchIndex(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *model.ReadPayload) ([]model.SearchGroup, error) {
		return h.contentService.GetSearchIndex(c.Request().Context())
	}, http.StatusOK, "")(c)
}

func (h *ContentHandler) GetLanguages(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *model.ReadPayload) ([]model.LanguageOption, error) {
		return h.contentService.GetLanguages(c.Request().Context())
	}, http.StatusOK, "")(c)
}

func (h *ContentHandler) GetProjectsList(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *model.ReadPayload) ([]model.ProjectListItem, error) {
		return h.contentService.GetProjectsList(c.Request().Context())
	}, http.StatusOK, "")(c)
}
