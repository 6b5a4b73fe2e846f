package memory

import (
	"context"

	"realestate/internal/catalog/models"
	id "realestate/pkg/domain"
)

type ImageStore struct {
	st *state
}

func (s *ImageStore) GetByID(_ context.Context, imageID id.ImageID) (*models.PropertyImage, error) {
	s.st.mu.RLock()
	defer s.st.mu.RUnlock()
	rec, err := s.st.images.get(imageID)
	if err != nil {
		return nil, err
	}
	return models.RestorePropertyImage(rec), nil
}

func (s *ImageStore) GetAll(_ context.Context) ([]*models.PropertyImage, error) {
	return s.list(nil), nil
}

func (s *ImageStore) GetByPropertyID(_ context.Context, propertyID id.PropertyID) ([]*models.PropertyImage, error) {
	return s.list(func(r models.PropertyImageRecord) bool { return r.PropertyID == propertyID }), nil
}

func (s *ImageStore) GetEnabledByPropertyID(_ context.Context, propertyID id.PropertyID) ([]*models.PropertyImage, error) {
	return s.list(func(r models.PropertyImageRecord) bool { return r.PropertyID == propertyID && r.Enabled }), nil
}

func (s *ImageStore) list(match func(models.PropertyImageRecord) bool) []*models.PropertyImage {
	s.st.mu.RLock()
	defer s.st.mu.RUnlock()
	recs := s.st.images.inserted(match)
	out := make([]*models.PropertyImage, 0, len(recs))
	for _, rec := range recs {
		out = append(out, models.RestorePropertyImage(rec))
	}
	return out
}

func (s *ImageStore) Add(_ context.Context, img *models.PropertyImage) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.images.insert(img.Record())
}

func (s *ImageStore) AddMany(_ context.Context, images []*models.PropertyImage) error {
	recs := make([]models.PropertyImageRecord, len(images))
	for i, img := range images {
		recs[i] = img.Record()
	}
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.images.insertMany(recs)
}

func (s *ImageStore) Update(_ context.Context, img *models.PropertyImage) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.images.replace(img.Record())
}

func (s *ImageStore) Delete(_ context.Context, imageID id.ImageID) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.images.remove(imageID)
}

func (s *ImageStore) Exists(_ context.Context, imageID id.ImageID) (bool, error) {
	s.st.mu.RLock()
	defer s.st.mu.RUnlock()
	return s.st.images.has(imageID), nil
}
