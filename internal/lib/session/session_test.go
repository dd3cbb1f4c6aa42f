package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		SecretKey:     "jwt-secret-for-tests",
		CookieSecret:  strings.Repeat("c", 32),
		AdminEmail:    "admin@example.com",
		AdminPassword: "hunter2",
	}
}

func requestWith(cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func TestIssueSetsCookieAttributes(t *testing.T) {
	m := NewManager(testAuthConfig(), true)

	cookie, err := m.Issue(RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestVerifyRoundTrip(t *testing.T) {
	m := NewManager(testAuthConfig(), false)

	cookie, err := m.Issue(RoleAdmin)
	require.NoError(t, err)

	claims, err := m.Verify(requestWith(cookie))
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(TTL), claims.ExpiresAt, time.Minute)
}

func TestVerifyWithoutCookie(t *testing.T) {
	m := NewManager(testAuthConfig(), false)

	_, err := m.Verify(requestWith(nil))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestVerifyRejectsCookieSignedWithAnotherSecret(t *testing.T) {
	other := testAuthConfig()
	other.CookieSecret = strings.Repeat("x", 32)

	cookie, err := NewManager(other, false).Issue(RoleAdmin)
	require.NoError(t, err)

	_, err = NewManager(testAuthConfig(), false).Verify(requestWith(cookie))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsTokenSignedWithAnotherJWTSecret(t *testing.T) {
	other := testAuthConfig()
	other.SecretKey = "another-jwt-secret"

	cookie, err := NewManager(other, false).Issue(RoleAdmin)
	require.NoError(t, err)

	_, err = NewManager(testAuthConfig(), false).Verify(requestWith(cookie))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewManager(testAuthConfig(), false)
	m.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }

	cookie, err := m.Issue(RoleAdmin)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(requestWith(cookie))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyReturnsOtherRoles(t *testing.T) {
	m := NewManager(testAuthConfig(), false)

	cookie, err := m.Issue("viewer")
	require.NoError(t, err)

	claims, err := m.Verify(requestWith(cookie))
	require.NoError(t, err)
	assert.Equal(t, "viewer", claims.Role)
}

func TestClearExpiresCookie(t *testing.T) {
	cookie := NewManager(testAuthConfig(), false).Clear()

	assert.Equal(t, CookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
