// Package memory is an in-memory twin of the MongoDB catalog store. It
// evaluates the same filter predicate tree and honours the same ordering and
// not-found rules, so services can be exercised without a database.
package memory

import (
	"context"
	"sync"

	"realestate/internal/catalog/models"
	id "realestate/pkg/domain"
)

type state struct {
	mu         sync.RWMutex
	owners     *collection[id.OwnerID, models.OwnerRecord]
	properties *collection[id.PropertyID, models.PropertyRecord]
	images     *collection[id.ImageID, models.PropertyImageRecord]
	traces     *collection[id.TraceID, models.PropertyTraceRecord]
}

// Store groups the in-memory catalog collections.
type Store struct {
	Owners     *OwnerStore
	Properties *PropertyStore
	Images     *ImageStore
	Traces     *TraceStore
}

// New creates an empty in-memory catalog.
func New() *Store {
	st := &state{
		owners:     newCollection("owner", func(r models.OwnerRecord) id.OwnerID { return r.ID }),
		properties: newCollection("property", func(r models.PropertyRecord) id.PropertyID { return r.ID }),
		images:     newCollection("image", func(r models.PropertyImageRecord) id.ImageID { return r.ID }),
		traces:     newCollection("trace", func(r models.PropertyTraceRecord) id.TraceID { return r.ID }),
	}
	return &Store{
		Owners:     &OwnerStore{st: st},
		Properties: &PropertyStore{st: st},
		Images:     &ImageStore{st: st},
		Traces:     &TraceStore{st: st},
	}
}

// EnsureIndexes is a no-op; the in-memory store needs no indexes.
func (s *Store) EnsureIndexes(context.Context) {}
