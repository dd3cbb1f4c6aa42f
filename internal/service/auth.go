package service

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/deppfellow/portfolio-backend/internal/lib/session"
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/rs/zerolog"
)

// SessionIssuer mints and clears the admin session cookie.
type SessionIssuer interface {
	Issue(role string) (*http.Cookie, error)
	Clear() *http.Cookie
}

// AuthService checks credentials against the single configured admin.
type AuthService struct {
	email    string
	password string
	sessions SessionIssuer
}

func NewAuthService(cfg config.AuthConfig, sessions SessionIssuer) *AuthService {
	return &AuthService{
		email:    cfg.AdminEmail,
		password: cfg.AdminPassword,
		sessions: sessions,
	}
}

// Login returns the session cookie for matching credentials.
func (s *AuthService) Login(ctx context.Context, payload *model.LoginPayload) (*http.Cookie, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(payload.Email), []byte(s.email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(payload.Password), []byte(s.password)) == 1

	if !emailOK || !passwordOK {
		zerolog.Ctx(ctx).Warn().Msg("admin login rejected")
		return nil, errs.NewUnauthorizedError("Invalid credentials !", true)
	}

	cookie, err := s.sessions.Issue(session.RoleAdmin)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Msg("admin logged in")
	return cookie, nil
}

// Logout returns the cookie that clears the session.
func (s *AuthService) Logout(ctx context.Context) *http.Cookie {
	zerolog.Ctx(ctx).Info().Msg("admin logged out")
	return s.sessions.Clear()
}
