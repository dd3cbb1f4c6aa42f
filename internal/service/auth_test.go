package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() *AuthService {
	return NewAuthService(config.AuthConfig{
		AdminEmail:    "admin@example.com",
		AdminPassword: "s3cret",
	}, fakeSessions{})
}

func TestLoginIssuesAdminSession(t *testing.T) {
	cookie, err := newTestAuthService().Login(context.Background(), &model.LoginPayload{
		Email:    "admin@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-admin", cookie.Value)
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	svc := newTestAuthService()

	for _, payload := range []*model.LoginPayload{
		{Email: "admin@example.com", Password: "wrong"},
		{Email: "other@example.com", Password: "s3cret"},
	} {
		cookie, err := svc.Login(context.Background(), payload)
		assert.Nil(t, cookie)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
		assert.Equal(t, "Invalid credentials !", httpErr.Message)
	}
}
