package repository

import (
	"context"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/google/uuid"
)

// OwnerRepository stores the single owner document under a configured id.
type OwnerRepository struct {
	store   *DocumentStore[model.Owner, *model.Owner]
	ownerID uuid.UUID
}

func NewOwnerRepository(db DBTX, ownerID uuid.UUID) *OwnerRepository {
	return &OwnerRepository{
		store:   NewDocumentStore[model.Owner](db, TableOwners),
		ownerID: ownerID,
	}
}

func (r *OwnerRepository) GetSingleton(ctx context.Context) (*model.Owner, error) {
	return r.store.GetByID(ctx, r.ownerID)
}

// CreateSingleton fails with a unique violation once the owner exists.
func (r *OwnerRepository) CreateSingleton(ctx context.Context, fields model.OwnerFields) (*model.Owner, error) {
	return r.store.CreateWithID(ctx, r.ownerID, fields)
}

func (r *OwnerRepository) UpdateSingleton(ctx context.Context, patch any) (*model.Owner, error) {
	return r.store.UpdateByID(ctx, r.ownerID, patch)
}
