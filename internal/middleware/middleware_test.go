package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/deppfellow/portfolio-backend/internal/lib/session"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{},
		Logger: &logger,
		Session: session.NewManager(config.AuthConfig{
			SecretKey:    "jwt-secret-for-tests",
			CookieSecret: "cookie-secret-for-tests-0123456789",
		}, false),
	}
}

func newTestEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	return e
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) errs.Envelope {
	t.Helper()

	var body errs.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequireAdmin(t *testing.T) {
	s := newTestServer(t)
	e := newTestEcho(s)
	e.POST("/blog", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"role": GetUserRole(c)})
	}, NewAuthMiddleware(s).RequireAdmin)

	adminCookie, err := s.Session.Issue(session.RoleAdmin)
	require.NoError(t, err)
	viewerCookie, err := s.Session.Issue("viewer")
	require.NoError(t, err)

	tests := []struct {
		name    string
		cookie  *http.Cookie
		status  int
		message string
	}{
		{"no cookie", nil, http.StatusUnauthorized, "Unauthorized"},
		{"tampered cookie", &http.Cookie{Name: session.CookieName, Value: "not-a-signed-value"}, http.StatusUnauthorized, "Invalid token"},
		{"wrong role", viewerCookie, http.StatusForbidden, "Forbidden"},
		{"admin", adminCookie, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/blog", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.message != "" {
				body := decodeEnvelope(t, rec)
				assert.False(t, body.Success)
				assert.Equal(t, tt.message, body.Message)
			} else {
				assert.JSONEq(t, `{"role":"admin"}`, rec.Body.String())
			}
		})
	}
}

func TestGlobalErrorHandlerEnvelope(t *testing.T) {
	s := newTestServer(t)
	e := newTestEcho(s)
	e.GET("/validation", func(c echo.Context) error {
		return errs.NewBadRequestError("Missing required fields: title", true, nil, []errs.FieldError{
			{Field: "title", Error: "is required"},
		})
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("connection refused")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/validation", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"success": false,
		"message": "Missing required fields: title",
		"code": "BAD_REQUEST",
		"errors": [{"field": "title", "error": "is required"}]
	}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Internal server error", body.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeEnvelope(t, rec).Message)
}

func TestRequestIDIsGeneratedAndEchoed(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Body.String())
	assert.Equal(t, rec.Body.String(), rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "upstream-id", rec.Body.String())
}

func TestRateLimitFixedWindow(t *testing.T) {
	mr := miniredis.RunT(t)

	s := newTestServer(t)
	s.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = s.Redis.Close() })

	limiter := NewRateLimitMiddleware(s)
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	e := newTestEcho(s)
	e.POST("/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, limiter.Limit("login", 2, time.Minute))

	hit := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, hit().Code)
	assert.Equal(t, http.StatusOK, hit().Code)

	rec := hit()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests", decodeEnvelope(t, rec).Message)

	now = now.Add(time.Minute)
	assert.Equal(t, http.StatusOK, hit().Code)
}

func TestRateLimitFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)

	s := newTestServer(t)
	s.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = s.Redis.Close() })
	mr.Close()

	e := newTestEcho(s)
	e.POST("/contact-form", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, NewRateLimitMiddleware(s).Limit("contact", 1, time.Minute))

	for range 3 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact-form", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
