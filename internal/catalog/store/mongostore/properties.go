package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"realestate/internal/catalog/filter"
	"realestate/internal/catalog/models"
	id "realestate/pkg/domain"
)

type (
	propertyKey    = id.PropertyID
	propertyRecord = models.PropertyRecord
)

// PropertyStore persists properties in the Properties collection and serves
// the filtered, paginated catalog query.
type PropertyStore struct {
	repo repository[propertyKey, propertyRecord]
}

// GetByID returns the property scalars. Images and traces are loaded through
// their own stores.
func (s *PropertyStore) GetByID(ctx context.Context, propertyID id.PropertyID) (*models.Property, error) {
	rec, err := s.repo.get(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return models.RestoreProperty(rec, nil, nil), nil
}

func (s *PropertyStore) GetAll(ctx context.Context) ([]*models.Property, error) {
	return s.list(ctx, bson.D{})
}

func (s *PropertyStore) GetByOwnerID(ctx context.Context, ownerID id.OwnerID) ([]*models.Property, error) {
	return s.list(ctx, bson.D{{Key: "idOwner", Value: ownerID}})
}

func (s *PropertyStore) list(ctx context.Context, query bson.D) ([]*models.Property, error) {
	recs, err := s.repo.find(ctx, query, byID())
	if err != nil {
		return nil, err
	}
	out := make([]*models.Property, 0, len(recs))
	for _, rec := range recs {
		out = append(out, models.RestoreProperty(rec, nil, nil))
	}
	return out, nil
}

func (s *PropertyStore) Add(ctx context.Context, p *models.Property) error {
	return s.repo.insert(ctx, p.Record())
}

func (s *PropertyStore) AddMany(ctx context.Context, properties []*models.Property) error {
	recs := make([]propertyRecord, len(properties))
	for i, p := range properties {
		recs[i] = p.Record()
	}
	return s.repo.insertMany(ctx, recs)
}

func (s *PropertyStore) Update(ctx context.Context, p *models.Property) error {
	return s.repo.replace(ctx, p.ID(), p.Record())
}

func (s *PropertyStore) Delete(ctx context.Context, propertyID id.PropertyID) error {
	return s.repo.delete(ctx, propertyID)
}

func (s *PropertyStore) Exists(ctx context.Context, propertyID id.PropertyID) (bool, error) {
	return s.repo.exists(ctx, propertyID)
}

// GetFiltered counts the documents matching criteria, then returns one page of
// them joined with their images. The count runs before pagination and before
// the join. Both calls run on ctx, so cancelling it aborts whichever is in flight.
func (s *PropertyStore) GetFiltered(ctx context.Context, criteria filter.Criteria, page, pageSize int) (items []models.PropertyWithImages, total int, err error) {
	ctx, span := startSpan(ctx, "GetFiltered", s.repo.coll.Name())
	defer func() { endSpan(span, err) }()

	match, err := ToBSON(filter.Build(criteria))
	if err != nil {
		return nil, 0, err
	}

	count, err := s.repo.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}

	cur, err := s.repo.coll.Aggregate(ctx, filteredPipeline(match, page, pageSize))
	if err != nil {
		return nil, 0, fmt.Errorf("aggregate properties: %w", err)
	}
	items = []models.PropertyWithImages{}
	if err = cur.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("decode properties: %w", err)
	}
	return items, int(count), nil
}

// GetWithImagesByID returns one property joined with its images.
func (s *PropertyStore) GetWithImagesByID(ctx context.Context, propertyID id.PropertyID) (_ *models.PropertyWithImages, err error) {
	ctx, span := startSpan(ctx, "GetWithImagesByID", s.repo.coll.Name())
	defer func() { endSpan(span, err) }()

	cur, err := s.repo.coll.Aggregate(ctx, byIDPipeline(propertyID))
	if err != nil {
		return nil, fmt.Errorf("aggregate property: %w", err)
	}
	var items []models.PropertyWithImages
	if err = cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode property: %w", err)
	}
	if len(items) == 0 {
		return nil, s.repo.notFound(propertyID)
	}
	return &items[0], nil
}
