package handler

import (
	"net/http"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type UploadHandler struct {
	Handler
	uploadService *service.UploadService
}

func NewUploadHandler(s *server.Server, uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{
		Handler:       NewHandler(s),
		uploadService: uploadService,
	}
}

func (h *UploadHandler) CreateUploadURL(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.UploadURLPayload) (*model.UploadURL, error) {
		return h.uploadService.CreateUploadURL(c.Request().Context(), payload)
	}, http.StatusOK, "")(c)
}
