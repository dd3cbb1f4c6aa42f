package service

import (
	"context"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/google/uuid"
)

// ExperienceStore persists experience documents.
type ExperienceStore interface {
	Create(ctx context.Context, fields any) (*model.Experience, error)
	GetAll(ctx context.Context) ([]model.Experience, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Experience, error)
	UpdateByID(ctx context.Context, id uuid.UUID, patch any) (*model.Experience, error)
}

type ExperienceService struct {
	experiences ExperienceStore
	media       *MediaJanitor
}

func NewExperienceService(experiences ExperienceStore, media *MediaJanitor) *ExperienceService {
	return &ExperienceService{experiences: experiences, media: media}
}

func (s *ExperienceService) CreateExperience(ctx context.Context, payload *model.CreateExperiencePayload) (*model.Experience, error) {
	return s.experiences.Create(ctx, payload.ExperienceFields)
}

func (s *ExperienceService) GetExperiences(ctx context.Context) ([]model.Experience, error) {
	experiences, err := s.experiences.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(experiences), nil
}

func (s *ExperienceService) GetExperience(ctx context.Context, payload *model.GetExperiencePayload) (*model.Experience, error) {
	return s.experiences.GetByID(ctx, payload.UUID())
}

func (s *ExperienceService) UpdateExperience(ctx context.Context, payload *model.UpdateExperiencePayload) (*model.Experience, error) {
	id := payload.UUID()

	current, err := s.experiences.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.media.Purge(ctx, model.KindExperience, removedSingle(current.CompanyLogo, payload.CompanyLogo))

	return s.experiences.UpdateByID(ctx, id, payload)
}
