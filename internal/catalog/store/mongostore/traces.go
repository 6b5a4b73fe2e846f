package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"realestate/internal/catalog/models"
	id "realestate/pkg/domain"
)

type (
	traceKey    = id.TraceID
	traceRecord = models.PropertyTraceRecord
)

// TraceStore persists sale history in the PropertyTraces collection.
type TraceStore struct {
	repo repository[traceKey, traceRecord]
}

func (s *TraceStore) GetByID(ctx context.Context, traceID id.TraceID) (*models.PropertyTrace, error) {
	rec, err := s.repo.get(ctx, traceID)
	if err != nil {
		return nil, err
	}
	return models.RestorePropertyTrace(rec), nil
}

func (s *TraceStore) GetAll(ctx context.Context) ([]*models.PropertyTrace, error) {
	return s.list(ctx, bson.D{})
}

// GetByPropertyID returns the traces of a property in insertion order.
func (s *TraceStore) GetByPropertyID(ctx context.Context, propertyID id.PropertyID) ([]*models.PropertyTrace, error) {
	return s.list(ctx, bson.D{{Key: "idProperty", Value: propertyID}})
}

// GetByPropertyIDOrderedByDate returns the traces of a property, most recent sale first.
func (s *TraceStore) GetByPropertyIDOrderedByDate(ctx context.Context, propertyID id.PropertyID) ([]*models.PropertyTrace, error) {
	return s.list(ctx, bson.D{{Key: "idProperty", Value: propertyID}},
		options.Find().SetSort(bson.D{{Key: "dateSale", Value: -1}, {Key: "_id", Value: 1}}))
}

func (s *TraceStore) list(ctx context.Context, query bson.D, opts ...*options.FindOptions) ([]*models.PropertyTrace, error) {
	recs, err := s.repo.find(ctx, query, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]*models.PropertyTrace, 0, len(recs))
	for _, rec := range recs {
		out = append(out, models.RestorePropertyTrace(rec))
	}
	return out, nil
}

func (s *TraceStore) Add(ctx context.Context, tr *models.PropertyTrace) error {
	return s.repo.insert(ctx, tr.Record())
}

func (s *TraceStore) AddMany(ctx context.Context, traces []*models.PropertyTrace) error {
	recs := make([]traceRecord, len(traces))
	for i, tr := range traces {
		recs[i] = tr.Record()
	}
	return s.repo.insertMany(ctx, recs)
}

func (s *TraceStore) Update(ctx context.Context, tr *models.PropertyTrace) error {
	return s.repo.replace(ctx, tr.ID(), tr.Record())
}

func (s *TraceStore) Delete(ctx context.Context, traceID id.TraceID) error {
	return s.repo.delete(ctx, traceID)
}

func (s *TraceStore) Exists(ctx context.Context, traceID id.TraceID) (bool, error) {
	return s.repo.exists(ctx, traceID)
}
