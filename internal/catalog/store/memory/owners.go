package memory

import (
	"context"

	"realestate/internal/catalog/models"
	id "realestate/pkg/domain"
)

type OwnerStore struct {
	st *state
}

func (s *OwnerStore) GetByID(_ context.Context, ownerID id.OwnerID) (*models.Owner, error) {
	s.st.mu.RLock()
	defer s.st.mu.RUnlock()
	rec, err := s.st.owners.get(ownerID)
	if err != nil {
		return nil, err
	}
	return models.RestoreOwner(rec), nil
}

func (s *OwnerStore) GetAll(_ context.Context) ([]*models.Owner, error) {
	s.st.mu.RLock()
	defer s.st.mu.RUnlock()
	recs := s.st.owners.sorted(nil)
	out := make([]*models.Owner, 0, len(recs))
	for _, rec := range recs {
		out = append(out, models.RestoreOwner(rec))
	}
	return out, nil
}

func (s *OwnerStore) Add(_ context.Context, o *models.Owner) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.owners.insert(o.Record())
}

func (s *OwnerStore) AddMany(_ context.Context, owners []*models.Owner) error {
	recs := make([]models.OwnerRecord, len(owners))
	for i, o := range owners {
		recs[i] = o.Record()
	}
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.owners.insertMany(recs)
}

func (s *OwnerStore) Update(_ context.Context, o *models.Owner) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.owners.replace(o.Record())
}

func (s *OwnerStore) Delete(_ context.Context, ownerID id.OwnerID) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.owners.remove(ownerID)
}

func (s *OwnerStore) Exists(_ context.Context, ownerID id.OwnerID) (bool, error) {
	s.st.mu.RLock()
	defer s.st.mu.RUnlock()
	return s.st.owners.has(ownerID), nil
}
