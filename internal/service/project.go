package service

import (
	"context"

	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/sqlerr"
	"github.com/google/uuid"
)

// ProjectStore persists project documents.
type ProjectStore interface {
	Create(ctx context.Context, fields any) (*model.Project, error)
	GetAll(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	GetBySlug(ctx context.Context, navLink string) (*model.Project, error)
	UpdateByID(ctx context.Context, id uuid.UUID, patch any) (*model.Project, error)
}

type ProjectService struct {
	projects ProjectStore
	media    *MediaJanitor
}

func NewProjectService(projects ProjectStore, media *MediaJanitor) *ProjectService {
	return &ProjectService{projects: projects, media: media}
}

func (s *ProjectService) CreateProject(ctx context.Context, payload *model.CreateProjectPayload) (*model.Project, error) {
	return s.projects.Create(ctx, payload.ProjectFields)
}

func (s *ProjectService) GetProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := s.projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(projects), nil
}

// GetProjectBySlug answers 400, not 404, for an unknown navLink.
func (s *ProjectService) GetProjectBySlug(ctx context.Context, navLink string) (*model.Project, error) {
	project, err := s.projects.GetBySlug(ctx, navLink)
	if err != nil {
		if sqlerr.IsNoRows(err) {
			return nil, errs.NewBadRequestError("Project not found", true, nil, nil)
		}
		return nil, err
	}
	return project, nil
}

// UpdateProject applies a partial update. When images are replaced, the
// images no longer listed are removed from storage before the write.
func (s *ProjectService) UpdateProject(ctx context.Context, payload *model.UpdateProjectPayload) (*model.Project, error) {
	id := payload.UUID()

	current, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.media.Purge(ctx, model.KindProject, removedList(current.Images, payload.Images))

	return s.projects.UpdateByID(ctx, id, payload)
}
