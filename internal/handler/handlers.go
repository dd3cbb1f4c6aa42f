// Package handler is the first layer after the router.
//
// It binds requests, runs the schema and struct validation from the
// validation package, and calls the service layer. Every response is
// wrapped in the {success, message, data} envelope.
package handler

import (
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
)

type Handlers struct {
	Health      *HealthHandler
	OpenAPI     *OpenAPIHandler
	Auth        *AuthHandler
	Owner       *OwnerHandler
	Project     *ProjectHandler
	Blog        *BlogHandler
	Experience  *ExperienceHandler
	Achievement *AchievementHandler
	Content     *ContentHandler
	Contact     *ContactHandler
	Upload      *UploadHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		OpenAPI:     NewOpenAPIHandler(s),
		Auth:        NewAuthHandler(s, services.Auth),
		Owner:       NewOwnerHandler(s, services.Owner),
		Project:     NewProjectHandler(s, services.Project),
		Blog:        NewBlogHandler(s, services.Blog),
		Experience:  NewExperienceHandler(s, services.Experience),
		Achievement: NewAchievementHandler(s, services.Achievement),
		Content:     NewContentHandler(s, services.Content),
		Contact:     NewContactHandler(s, services.Contact),
		Upload:      NewUploadHandler(s, services.Upload),
	}
}
