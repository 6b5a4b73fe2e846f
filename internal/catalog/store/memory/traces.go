package memory

import (
	"context"
	"slices"

	"realestate/internal/catalog/models"
	id "realestate/pkg/domain"
)

type TraceStore struct {
	st *state
}

func (s *TraceStore) GetByID(_ context.Context, traceID id.TraceID) (*models.PropertyTrace, error) {
	s.st.mu.RLock()
	defer s.st.mu.RUnlock()
	rec, err := s.st.traces.get(traceID)
	if err != nil {
		return nil, err
	}
	return models.RestorePropertyTrace(rec), nil
}

func (s *TraceStore) GetAll(_ context.Context) ([]*models.PropertyTrace, error) {
	return restoreTraces(s.records(nil)), nil
}

func (s *TraceStore) GetByPropertyID(_ context.Context, propertyID id.PropertyID) ([]*models.PropertyTrace, error) {
	return restoreTraces(s.records(forProperty(propertyID))), nil
}

// GetByPropertyIDOrderedByDate returns the most recent sale first.
func (s *TraceStore) GetByPropertyIDOrderedByDate(_ context.Context, propertyID id.PropertyID) ([]*models.PropertyTrace, error) {
	recs := s.records(forProperty(propertyID))
	slices.SortStableFunc(recs, func(a, b models.PropertyTraceRecord) int {
		return b.DateSale.Compare(a.DateSale)
	})
	return restoreTraces(recs), nil
}

func forProperty(propertyID id.PropertyID) func(models.PropertyTraceRecord) bool {
	return func(r models.PropertyTraceRecord) bool { return r.PropertyID == propertyID }
}

func (s *TraceStore) records(match func(models.PropertyTraceRecord) bool) []models.PropertyTraceRecord {
	s.st.mu.RLock()
	defer s.st.mu.RUnlock()
	return s.st.traces.inserted(match)
}

func restoreTraces(recs []models.PropertyTraceRecord) []*models.PropertyTrace {
	out := make([]*models.PropertyTrace, 0, len(recs))
	for _, rec := range recs {
		out = append(out, models.RestorePropertyTrace(rec))
	}
	return out
}

func (s *TraceStore) Add(_ context.Context, tr *models.PropertyTrace) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.traces.insert(tr.Record())
}

func (s *TraceStore) AddMany(_ context.Context, traces []*models.PropertyTrace) error {
	recs := make([]models.PropertyTraceRecord, len(traces))
	for i, tr := range traces {
		recs[i] = tr.Record()
	}
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.traces.insertMany(recs)
}

func (s *TraceStore) Update(_ context.Context, tr *models.PropertyTrace) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.traces.replace(tr.Record())
}

func (s *TraceStore) Delete(_ context.Context, traceID id.TraceID) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.traces.remove(traceID)
}

func (s *TraceStore) Exists(_ context.Context, traceID id.TraceID) (bool, error) {
	s.st.mu.RLock()
	defer s.st.mu.RUnlock()
	return s.st.traces.has(traceID), nil
}
