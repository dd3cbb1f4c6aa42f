package handler

import (
	"net/http"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	Handler
	contactService *service.ContactService
}

func NewContactHandler(s *server.Server, contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler:        NewHandler(s),
		contactService: contactService,
	}
}

func (h *ContactHandler) SendMessage(c echo.Context) error {
	return HandleNoData(h.Handler, func(c echo.Context, payload *model.ContactPayload) error {
		return h.contactService.SendMessage(c.Request().Context(), payload)
	}, http.StatusOK, "Message sent successfully!")(c)
}
