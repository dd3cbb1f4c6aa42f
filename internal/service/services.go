// Package service contains the business logic.
//
// It sits between the handler and repository layers. Updates that
// replace media references remove the old objects from storage
// before the new document is written.
package service

import (
	"errors"

	"github.com/deppfellow/portfolio-backend/internal/lib/job"
	"github.com/deppfellow/portfolio-backend/internal/repository"
	"github.com/deppfellow/portfolio-backend/internal/server"
)

type Services struct {
	Auth        *AuthService
	Owner       *OwnerService
	Project     *ProjectService
	Blog        *BlogService
	Experience  *ExperienceService
	Achievement *AchievementService
	Content     *ContentService
	Contact     *ContactService
	Upload      *UploadService
	Job         *job.JobService
}

// NewServices wires the services onto the server's collaborators. Storage,
// email and the session manager are required; the job queue is optional.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	switch {
	case repos == nil:
		return nil, errors.New("repositories are not initialized")
	case s.Storage == nil:
		return nil, errors.New("object storage client is not initialized")
	case s.Email == nil:
		return nil, errors.New("email client is not initialized")
	case s.Session == nil:
		return nil, errors.New("session manager is not initialized")
	}

	media := NewMediaJanitor(s.Storage)

	var acks AckQueue
	if s.Job != nil {
		acks = s.Job
	}

	return &Services{
		Auth:        NewAuthService(s.Config.Auth, s.Session),
		Owner:       NewOwnerService(repos.Owner, media),
		Project:     NewProjectService(repos.Project, media),
		Blog:        NewBlogService(repos.Blog),
		Experience:  NewExperienceService(repos.Experience, media),
		Achievement: NewAchievementService(repos.Achievement, media),
		Content:     NewContentService(repos.Owner, repos.Project, repos.Blog),
		Contact:     NewContactService(s.Email, acks),
		Upload:      NewUploadService(s.Storage),
		Job:         s.Job,
	}, nil
}
