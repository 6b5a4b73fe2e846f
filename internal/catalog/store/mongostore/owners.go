package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"realestate/internal/catalog/models"
	id "realestate/pkg/domain"
)

type (
	ownerKey    = id.OwnerID
	ownerRecord = models.OwnerRecord
)

// OwnerStore persists owners in the Owners collection.
type OwnerStore struct {
	repo repository[ownerKey, ownerRecord]
}

func (s *OwnerStore) GetByID(ctx context.Context, ownerID id.OwnerID) (*models.Owner, error) {
	rec, err := s.repo.get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return models.RestoreOwner(rec), nil
}

func (s *OwnerStore) GetAll(ctx context.Context) ([]*models.Owner, error) {
	recs, err := s.repo.find(ctx, bson.D{}, byID())
	if err != nil {
		return nil, err
	}
	out := make([]*models.Owner, 0, len(recs))
	for _, rec := range recs {
		out = append(out, models.RestoreOwner(rec))
	}
	return out, nil
}

func (s *OwnerStore) Add(ctx context.Context, o *models.Owner) error {
	return s.repo.insert(ctx, o.Record())
}

func (s *OwnerStore) AddMany(ctx context.Context, owners []*models.Owner) error {
	recs := make([]ownerRecord, len(owners))
	for i, o := range owners {
		recs[i] = o.Record()
	}
	return s.repo.insertMany(ctx, recs)
}

func (s *OwnerStore) Update(ctx context.Context, o *models.Owner) error {
	return s.repo.replace(ctx, o.ID(), o.Record())
}

func (s *OwnerStore) Delete(ctx context.Context, ownerID id.OwnerID) error {
	return s.repo.delete(ctx, ownerID)
}

func (s *OwnerStore) Exists(ctx context.Context, ownerID id.OwnerID) (bool, error) {
	return s.repo.exists(ctx, ownerID)
}
