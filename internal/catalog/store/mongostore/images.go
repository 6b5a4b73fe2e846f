package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"realestate/internal/catalog/models"
	id "realestate/pkg/domain"
)

type (
	imageKey    = id.ImageID
	imageRecord = models.PropertyImageRecord
)

// ImageStore persists images in the PropertyImages collection.
type ImageStore struct {
	repo repository[imageKey, imageRecord]
}

func (s *ImageStore) GetByID(ctx context.Context, imageID id.ImageID) (*models.PropertyImage, error) {
	rec, err := s.repo.get(ctx, imageID)
	if err != nil {
		return nil, err
	}
	return models.RestorePropertyImage(rec), nil
}

func (s *ImageStore) GetAll(ctx context.Context) ([]*models.PropertyImage, error) {
	return s.list(ctx, bson.D{})
}

// GetByPropertyID returns every image of a property in insertion order.
func (s *ImageStore) GetByPropertyID(ctx context.Context, propertyID id.PropertyID) ([]*models.PropertyImage, error) {
	return s.list(ctx, bson.D{{Key: "idProperty", Value: propertyID}})
}

// GetEnabledByPropertyID returns the enabled images of a property in insertion order.
func (s *ImageStore) GetEnabledByPropertyID(ctx context.Context, propertyID id.PropertyID) ([]*models.PropertyImage, error) {
	return s.list(ctx, bson.D{{Key: "idProperty", Value: propertyID}, {Key: "enabled", Value: true}})
}

func (s *ImageStore) list(ctx context.Context, query bson.D) ([]*models.PropertyImage, error) {
	recs, err := s.repo.find(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]*models.PropertyImage, 0, len(recs))
	for _, rec := range recs {
		out = append(out, models.RestorePropertyImage(rec))
	}
	return out, nil
}

func (s *ImageStore) Add(ctx context.Context, img *models.PropertyImage) error {
	return s.repo.insert(ctx, img.Record())
}

func (s *ImageStore) AddMany(ctx context.Context, images []*models.PropertyImage) error {
	recs := make([]imageRecord, len(images))
	for i, img := range images {
		recs[i] = img.Record()
	}
	return s.repo.insertMany(ctx, recs)
}

func (s *ImageStore) Update(ctx context.Context, img *models.PropertyImage) error {
	return s.repo.replace(ctx, img.ID(), img.Record())
}

func (s *ImageStore) Delete(ctx context.Context, imageID id.ImageID) error {
	return s.repo.delete(ctx, imageID)
}

func (s *ImageStore) Exists(ctx context.Context, imageID id.ImageID) (bool, error) {
	return s.repo.exists(ctx, imageID)
}
