package service

import (
	"context"

	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/sqlerr"
)

// OwnerStore persists the singleton owner document.
type OwnerStore interface {
	GetSingleton(ctx context.Context) (*model.Owner, error)
	CreateSingleton(ctx context.Context, fields model.OwnerFields) (*model.Owner, error)
	UpdateSingleton(ctx context.Context, patch any) (*model.Owner, error)
}

type OwnerService struct {
	owners OwnerStore
	media  *MediaJanitor
}

func NewOwnerService(owners OwnerStore, media *MediaJanitor) *OwnerService {
	return &OwnerService{owners: owners, media: media}
}

func ownerNotFound() error {
	return errs.NewNotFoundError("Owner data not found", true, nil)
}

func (s *OwnerService) GetAbout(ctx context.Context) (*model.About, error) {
	owner, err := s.owners.GetSingleton(ctx)
	if err != nil {
		if sqlerr.IsNoRows(err) {
			return nil, ownerNotFound()
		}
		return nil, err
	}

	about := owner.About()
	return &about, nil
}

// CreateOwner stores the owner document. It can succeed only once.
func (s *OwnerService) CreateOwner(ctx context.Context, payload *model.CreateOwnerPayload) (*model.Owner, error) {
	owner, err := s.owners.CreateSingleton(ctx, payload.OwnerFields)
	if err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return nil, errs.NewBadRequestError("Owner details already exist", true, nil, nil)
		}
		return nil, err
	}
	return owner, nil
}

// UpdateOwner applies a partial update. A replaced profile picture is
// removed from storage before the write.
func (s *OwnerService) UpdateOwner(ctx context.Context, payload *model.UpdateOwnerPayload) (*model.Owner, error) {
	current, err := s.owners.GetSingleton(ctx)
	if err != nil {
		if sqlerr.IsNoRows(err) {
			return nil, ownerNotFound()
		}
		return nil, err
	}

	s.media.Purge(ctx, model.KindOwner, removedSingle(current.ProfilePic, payload.ProfilePic))

	return s.owners.UpdateSingleton(ctx, payload)
}

func (s *OwnerService) GetTweetIDs(ctx context.Context) (*model.TweetIDs, error) {
	owner, err := s.owners.GetSingleton(ctx)
	if err != nil {
		if sqlerr.IsNoRows(err) {
			return nil, errs.NewBadRequestError("No tweetIds found !", true, nil, nil)
		}
		return nil, err
	}

	return &model.TweetIDs{TweetIDs: nonNil(owner.TweetIDs)}, nil
}

func (s *OwnerService) UpdateTweetIDs(ctx context.Context, payload *model.UpdateTweetIDsPayload) ([]string, error) {
	owner, err := s.owners.UpdateSingleton(ctx, payload)
	if err != nil {
		if sqlerr.IsNoRows(err) {
			return nil, ownerNotFound()
		}
		return nil, err
	}
	return nonNil(owner.TweetIDs), nil
}

// nonNil keeps empty lists serialized as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
