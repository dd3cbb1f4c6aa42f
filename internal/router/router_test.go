package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/deppfellow/portfolio-backend/internal/handler"
	"github.com/deppfellow/portfolio-backend/internal/lib/session"
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/deppfellow/portfolio-backend/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	cfg := &config.Config{
		Server: config.ServerConfig{CORSAllowedOrigins: []string{"http://localhost:3000"}},
		Auth: config.AuthConfig{
			SecretKey:    "jwt-secret",
			CookieSecret: "0123456789abcdef0123456789abcdef",
		},
		RateLimit:     config.RateLimitConfig{LoginMax: 10, ContactMax: 5},
		Observability: config.DefaultObservabilityConfig(),
	}

	logger := zerolog.Nop()
	return &server.Server{
		Config:  cfg,
		Logger:  &logger,
		Session: session.NewManager(cfg.Auth, false),
	}
}

func TestContentRoutesAreMountedOnEveryVersion(t *testing.T) {
	s := newTestServer()
	r := NewRouter(s, handler.NewHandlers(s, &service.Services{}))

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, prefix := range APIVersions {
		for _, route := range []string{
			"GET /about", "POST /about", "PATCH /about",
			"GET /tweetIds", "PATCH /tweetIds",
			"GET /blog/:id", "PATCH /blog/:id",
			"GET /project/:navLink", "PATCH /project/:id",
			"POST /getS3UploadURL", "POST /contact-form",
			"GET /overview", "GET /search", "GET /languages", "GET /projectsList",
		} {
			method, path, _ := strings.Cut(route, " ")
			assert.True(t, registered[method+" "+prefix+path], "%s %s%s", method, prefix, path)
		}
	}

	assert.True(t, registered["POST /api/auth/login"])
	assert.True(t, registered["POST /api/auth/logout"])
	assert.True(t, registered["GET /status"])
}

func TestMutationsRequireAdminSession(t *testing.T) {
	s := newTestServer()
	r := NewRouter(s, handler.NewHandlers(s, &service.Services{}))

	for _, target := range []string{"/api/v1/blog", "/api/v2/achievement", "/api/v1/getS3UploadURL", "/api/auth/logout"} {
		req := httptest.NewRequest(http.MethodPost, target, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	}
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer()
	r := NewRouter(s, handler.NewHandlers(s, &service.Services{}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}

type recordingProjectStore struct {
	project  model.Project
	slugs    []string
	ids      []uuid.UUID
	patchIDs []uuid.UUID
}

func (r *recordingProjectStore) Create(context.Context, any) (*model.Project, error) {
	return nil, nil
}

func (r *recordingProjectStore) GetAll(context.Context) ([]model.Project, error) {
	return nil, nil
}

func (r *recordingProjectStore) GetByID(_ context.Context, id uuid.UUID) (*model.Project, error) {
	r.ids = append(r.ids, id)
	if id != r.project.ID {
		return nil, sqlerr.NoRows("projects")
	}
	project := r.project
	return &project, nil
}

func (r *recordingProjectStore) GetBySlug(_ context.Context, navLink string) (*model.Project, error) {
	r.slugs = append(r.slugs, navLink)
	if navLink != r.project.NavLink {
		return nil, sqlerr.NoRows("projects")
	}
	project := r.project
	return &project, nil
}

func (r *recordingProjectStore) UpdateByID(_ context.Context, id uuid.UUID, _ any) (*model.Project, error) {
	r.patchIDs = append(r.patchIDs, id)
	project := r.project
	return &project, nil
}

func TestProjectSegmentDispatchesByMethod(t *testing.T) {
	s := newTestServer()
	store := &recordingProjectStore{project: model.Project{
		Base:          model.Base{ID: uuid.New()},
		ProjectFields: model.ProjectFields{Name: "Portfolio", NavLink: "some-slug"},
	}}
	services := &service.Services{Project: service.NewProjectService(store, service.NewMediaJanitor(nil))}
	r := NewRouter(s, handler.NewHandlers(s, services))

	t.Run("GET binds the slug", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/project/some-slug", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"navLink":"some-slug"`)
		assert.Equal(t, []string{"some-slug"}, store.slugs)
		assert.Empty(t, store.ids)
	})

	t.Run("PATCH binds the id", func(t *testing.T) {
		cookie, err := s.Session.Issue(session.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/project/"+store.project.ID.String(), strings.NewReader(`{"name": "Renamed"}`))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(cookie)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []uuid.UUID{store.project.ID}, store.ids)
		assert.Equal(t, []uuid.UUID{store.project.ID}, store.patchIDs)
		assert.Equal(t, []string{"some-slug"}, store.slugs)
	})

	t.Run("PATCH with a slug is an invalid id", func(t *testing.T) {
		cookie, err := s.Session.Issue(session.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/project/some-slug", strings.NewReader(`{"name": "Renamed"}`))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(cookie)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid project ID")
	})
}
