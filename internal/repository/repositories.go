package repository

import (
	"fmt"

	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/google/uuid"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Owner       *OwnerRepository
	Project     *ProjectRepository
	Blog        *BlogRepository
	Experience  *ExperienceRepository
	Achievement *AchievementRepository
}

// NewRepositories builds every repository on the shared pool.
// The owner repository is bound to the configured owner id.
func NewRepositories(s *server.Server) (*Repositories, error) {
	ownerID, err := uuid.Parse(s.Config.Portfolio.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid portfolio owner id: %w", err)
	}

	pool := s.DB.Pool

	return &Repositories{
		Owner:       NewOwnerRepository(pool, ownerID),
		Project:     NewProjectRepository(pool),
		Blog:        NewBlogRepository(pool),
		Experience:  NewExperienceRepository(pool),
		Achievement: NewAchievementRepository(pool),
	}, nil
}
