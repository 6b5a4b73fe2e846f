// Package mongostore persists the catalog in MongoDB.
//
// Each collection has its own store; Store bundles them over one database
// handle so they share the process-wide client.
package mongostore

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	CollectionOwners     = "Owners"
	CollectionProperties = "Properties"
	CollectionImages     = "PropertyImages"
	CollectionTraces     = "PropertyTraces"

	// TextIndexName is the composite text index over property name and address.
	TextIndexName = "TextIndex_Name_Address"
)

// Store groups the catalog collections of one database.
type Store struct {
	db     *mongo.Database
	logger *slog.Logger

	Owners     *OwnerStore
	Properties *PropertyStore
	Images     *ImageStore
	Traces     *TraceStore
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New builds the stores over db.
func New(db *mongo.Database, opts ...Option) *Store {
	s := &Store{db: db, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	s.Owners = &OwnerStore{repo: newRepository[ownerKey, ownerRecord](db, CollectionOwners, "owner")}
	s.Properties = &PropertyStore{
		repo: newRepository[propertyKey, propertyRecord](db, CollectionProperties, "property"),
	}
	s.Images = &ImageStore{repo: newRepository[imageKey, imageRecord](db, CollectionImages, "image")}
	s.Traces = &TraceStore{repo: newRepository[traceKey, traceRecord](db, CollectionTraces, "trace")}
	return s
}

type indexSpec struct {
	collection string
	model      mongo.IndexModel
}

func indexSpecs() []indexSpec {
	return []indexSpec{
		{CollectionProperties, mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: "text"}, {Key: "address", Value: "text"}},
			Options: options.Index().SetName(TextIndexName),
		}},
		{CollectionProperties, mongo.IndexModel{
			Keys:    bson.D{{Key: "price", Value: 1}},
			Options: options.Index().SetName("Price"),
		}},
		{CollectionProperties, mongo.IndexModel{
			Keys:    bson.D{{Key: "idOwner", Value: 1}},
			Options: options.Index().SetName("IdOwner"),
		}},
		{CollectionImages, mongo.IndexModel{
			Keys:    bson.D{{Key: "idProperty", Value: 1}},
			Options: options.Index().SetName("IdProperty"),
		}},
		{CollectionTraces, mongo.IndexModel{
			Keys:    bson.D{{Key: "idProperty", Value: 1}, {Key: "dateSale", Value: -1}},
			Options: options.Index().SetName("IdProperty_DateSale"),
		}},
	}
}

// EnsureIndexes creates the catalog indexes. Failures usually mean the index
// already exists with other options; they are logged and never returned.
func (s *Store) EnsureIndexes(ctx context.Context) {
	for _, spec := range indexSpecs() {
		name := ""
		if spec.model.Options != nil && spec.model.Options.Name != nil {
			name = *spec.model.Options.Name
		}
		if _, err := s.db.Collection(spec.collection).Indexes().CreateOne(ctx, spec.model); err != nil {
			s.logger.WarnContext(ctx, "index creation failed, assuming it already exists",
				"collection", spec.collection,
				"index", name,
				"error", err.Error(),
			)
			continue
		}
		s.logger.DebugContext(ctx, "index ensured", "collection", spec.collection, "index", name)
	}
}
