package middleware

import (
	"errors"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/deppfellow/portfolio-backend/internal/lib/session"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards the admin-only routes with the session cookie.
type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
	}
}

// RequireAdmin lets the request through only with a valid admin session.
//
//   - no cookie:                       401 "Unauthorized"
//   - bad signature, bad token, expired: 401 "Invalid token"
//   - valid token, other role:         403 "Forbidden"
func (auth *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		logger := GetLogger(c)

		claims, err := auth.server.Session.Verify(c.Request())
		if err != nil {
			logger.Warn().
				Err(err).
				Str("function", "RequireAdmin").
				Dur("duration", time.Since(start)).
				Msg("rejected admin request")

			if errors.Is(err, session.ErrNoSession) {
				return errs.NewUnauthorizedError("Unauthorized", true)
			}
			return errs.NewUnauthorizedError("Invalid token", true)
		}

		if claims.Role != session.RoleAdmin {
			logger.Warn().
				Str("function", "RequireAdmin").
				Str("role", claims.Role).
				Msg("session role is not admin")

			return errs.NewForbiddenError("Forbidden", true)
		}

		c.Set(UserRoleKey, claims.Role)

		logger.Debug().
			Str("function", "RequireAdmin").
			Dur("duration", time.Since(start)).
			Msg("admin authenticated")

		return next(c)
	}
}
