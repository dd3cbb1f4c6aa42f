package handler

import (
	"net/http"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type OwnerHandler struct {
	Handler
	ownerService *service.OwnerService
}

func NewOwnerHandler(s *server.Server, ownerService *service.OwnerService) *OwnerHandler {
	return &OwnerHandler{
		Handler:      NewHandler(s),
		ownerService: ownerService,
	}
}

func (h *OwnerHandler) GetAbout(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *model.ReadPayload) (*model.About, error) {
		return h.ownerService.GetAbout(c.Request().Context())
	}, http.StatusOK, "Owner data retrieved successfully")(c)
}

func (h *OwnerHandler) CreateAbout(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.CreateOwnerPayload) (*model.Owner, error) {
		return h.ownerService.CreateOwner(c.Request().Context(), payload)
	}, http.StatusOK, "Owner details added")(c)
}

func (h *OwnerHandler) UpdateAbout(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.UpdateOwnerPayload) (*model.Owner, error) {
		return h.ownerService.UpdateOwner(c.Request().Context(), payload)
	}, http.StatusOK, "Owner details updated successfully")(c)
}

func (h *OwnerHandler) GetTweetIDs(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *model.ReadPayload) (*model.TweetIDs, error) {
		return h.ownerService.GetTweetIDs(c.Request().Context())
	}, http.StatusOK, "")(c)
}

func (h *OwnerHandler) UpdateTweetIDs(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.UpdateTweetIDsPayload) ([]string, error) {
		return h.ownerService.UpdateTweetIDs(c.Request().Context(), payload)
	}, http.StatusOK, "Tweets Updated")(c)
}
