package handler

import (
	"net/http"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Handler
	authService *service.AuthService
}

func NewAuthHandler(s *server.Server, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler:     NewHandler(s),
		authService: authService,
	}
}

// Login sets the admin session cookie. A body missing email or password
// fails validation with 400; wrong credentials are a 401 without a cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	return HandleNoData(h.Handler, func(c echo.Context, payload *model.LoginPayload) error {
		cookie, err := h.authService.Login(c.Request().Context(), payload)
		if err != nil {
			return err
		}
		c.SetCookie(cookie)
		return nil
	}, http.StatusOK, "Logged in successfully")(c)
}

// Logout runs behind RequireAdmin: logging out without a session is a 401.
func (h *AuthHandler) Logout(c echo.Context) error {
	return HandleNoData(h.Handler, func(c echo.Context, _ *model.LogoutPayload) error {
		c.SetCookie(h.authService.Logout(c.Request().Context()))
		return nil
	}, http.StatusOK, "Logged out")(c)
}
