package service

import (
	"context"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/google/uuid"
)

// AchievementStore persists achievement documents.
type AchievementStore interface {
	Create(ctx context.Context, fields any) (*model.Achievement, error)
	GetAll(ctx context.Context) ([]model.Achievement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Achievement, error)
	UpdateByID(ctx context.Context, id uuid.UUID, patch any) (*model.Achievement, error)
}

type AchievementService struct {
	achievements AchievementStore
	media        *MediaJanitor
}

func NewAchievementService(achievements AchievementStore, media *MediaJanitor) *AchievementService {
	return &AchievementService{achievements: achievements, media: media}
}

func (s *AchievementService) CreateAchievement(ctx context.Context, payload *model.CreateAchievementPayload) (*model.Achievement, error) {
	return s.achievements.Create(ctx, payload.AchievementFields)
}

func (s *AchievementService) GetAchievements(ctx context.Context) ([]model.Achievement, error) {
	achievements, err := s.achievements.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(achievements), nil
}

func (s *AchievementService) GetAchievement(ctx context.Context, payload *model.GetAchievementPayload) (*model.Achievement, error) {
	return s.achievements.GetByID(ctx, payload.UUID())
}

// UpdateAchievement removes a replaced company logo and dropped images
// in one batch before the write.
func (s *AchievementService) UpdateAchievement(ctx context.Context, payload *model.UpdateAchievementPayload) (*model.Achievement, error) {
	id := payload.UUID()

	current, err := s.achievements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	removed := removedSingle(current.CompanyLogo, payload.CompanyLogo)
	removed = append(removed, removedList(current.Images, payload.Images)...)
	s.media.Purge(ctx, model.KindAchievement, removed)

	return s.achievements.UpdateByID(ctx, id, payload)
}
