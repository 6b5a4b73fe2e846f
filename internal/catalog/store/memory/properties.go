package memory

import (
	"context"

	"realestate/internal/catalog/filter"
	"realestate/internal/catalog/models"
	id "realestate/pkg/domain"
)

type PropertyStore struct {
	st *state
}

// propertyDoc adapts a record to filter.Document.
type propertyDoc models.PropertyRecord

func (d propertyDoc) SearchText() []string { return []string{d.Name, d.Address} }

func (d propertyDoc) Number(field string) (float64, bool) {
	switch field {
	case filter.PriceField:
		return d.Price, true
	case "year":
		return float64(d.Year), true
	}
	return 0, false
}

func (s *PropertyStore) GetByID(_ context.Context, propertyID id.PropertyID) (*models.Property, error) {
	s.st.mu.RLock()
	defer s.st.mu.RUnlock()
	rec, err := s.st.properties.get(propertyID)
	if err != nil {
		return nil, err
	}
	return models.RestoreProperty(rec, nil, nil), nil
}

func (s *PropertyStore) GetAll(_ context.Context) ([]*models.Property, error) {
	return s.list(nil), nil
}

func (s *PropertyStore) GetByOwnerID(_ context.Context, ownerID id.OwnerID) ([]*models.Property, error) {
	return s.list(func(r models.PropertyRecord) bool { return r.OwnerID == ownerID }), nil
}

func (s *PropertyStore) list(match func(models.PropertyRecord) bool) []*models.Property {
	s.st.mu.RLock()
	defer s.st.mu.RUnlock()
	recs := s.st.properties.sorted(match)
	out := make([]*models.Property, 0, len(recs))
	for _, rec := range recs {
		out = append(out, models.RestoreProperty(rec, nil, nil))
	}
	return out
}

func (s *PropertyStore) Add(_ context.Context, p *models.Property) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.properties.insert(p.Record())
}

func (s *PropertyStore) AddMany(_ context.Context, properties []*models.Property) error {
	recs := make([]models.PropertyRecord, len(properties))
	for i, p := range properties {
		recs[i] = p.Record()
	}
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.properties.insertMany(recs)
}

func (s *PropertyStore) Update(_ context.Context, p *models.Property) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.properties.replace(p.Record())
}

func (s *PropertyStore) Delete(_ context.Context, propertyID id.PropertyID) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.properties.remove(propertyID)
}

func (s *PropertyStore) Exists(_ context.Context, propertyID id.PropertyID) (bool, error) {
	s.st.mu.RLock()
	defer s.st.mu.RUnlock()
	return s.st.properties.has(propertyID), nil
}

// GetFiltered mirrors the MongoDB query: count the matches, order by id, join
// images in insertion order, then cut the page.
func (s *PropertyStore) GetFiltered(ctx context.Context, criteria filter.Criteria, page, pageSize int) ([]models.PropertyWithImages, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	pred := filter.Build(criteria)

	s.st.mu.RLock()
	defer s.st.mu.RUnlock()

	matched := s.st.properties.sorted(func(r models.PropertyRecord) bool {
		return filter.Matches(pred, propertyDoc(r))
	})
	total := len(matched)

	if page < 1 || pageSize < 1 || page-1 >= ceilDiv(total, pageSize) {
		return []models.PropertyWithImages{}, total, nil
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	items := make([]models.PropertyWithImages, 0, end-start)
	for _, rec := range matched[start:end] {
		items = append(items, s.withImages(rec))
	}
	return items, total, nil
}

func (s *PropertyStore) GetWithImagesByID(ctx context.Context, propertyID id.PropertyID) (*models.PropertyWithImages, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.st.mu.RLock()
	defer s.st.mu.RUnlock()
	rec, err := s.st.properties.get(propertyID)
	if err != nil {
		return nil, err
	}
	out := s.withImages(rec)
	return &out, nil
}

// withImages must be called with the read lock held.
func (s *PropertyStore) withImages(rec models.PropertyRecord) models.PropertyWithImages {
	return models.PropertyWithImages{
		PropertyRecord: rec,
		Images: s.st.images.inserted(func(img models.PropertyImageRecord) bool {
			return img.PropertyID == rec.ID
		}),
	}
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
