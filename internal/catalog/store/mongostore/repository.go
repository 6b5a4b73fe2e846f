package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"realestate/pkg/platform/sentinel"
)

// repository implements the record-level CRUD shared by every collection.
// K is the typed id stored in _id, R the persisted record.
type repository[K ~string, R any] struct {
	coll   *mongo.Collection
	entity string
}

func newRepository[K ~string, R any](db *mongo.Database, collection, entity string) repository[K, R] {
	return repository[K, R]{coll: db.Collection(collection), entity: entity}
}

func (r repository[K, R]) notFound(id K) error {
	return fmt.Errorf("%s %s: %w", r.entity, string(id), sentinel.ErrNotFound)
}

func (r repository[K, R]) get(ctx context.Context, id K) (rec R, err error) {
	ctx, span := startSpan(ctx, "get", r.coll.Name())
	defer func() { endSpan(span, err) }()

	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rec, r.notFound(id)
	}
	if err != nil {
		return rec, fmt.Errorf("find %s: %w", r.entity, err)
	}
	return rec, nil
}

func (r repository[K, R]) find(ctx context.Context, query bson.D, opts ...*options.FindOptions) (recs []R, err error) {
	ctx, span := startSpan(ctx, "find", r.coll.Name())
	defer func() { endSpan(span, err) }()

	cur, err := r.coll.Find(ctx, query, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.entity, err)
	}
	recs = []R{}
	if err = cur.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.entity, err)
	}
	return recs, nil
}

func (r repository[K, R]) insert(ctx context.Context, rec R) (err error) {
	ctx, span := startSpan(ctx, "insert", r.coll.Name())
	defer func() { endSpan(span, err) }()

	if _, err = r.coll.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", r.entity, sentinel.ErrConflict)
		}
		return fmt.Errorf("insert %s: %w", r.entity, err)
	}
	return nil
}

func (r repository[K, R]) insertMany(ctx context.Context, recs []R) (err error) {
	if len(recs) == 0 {
		return nil
	}
	ctx, span := startSpan(ctx, "insertMany", r.coll.Name())
	defer func() { endSpan(span, err) }()

	docs := make([]any, len(recs))
	for i := range recs {
		docs[i] = recs[i]
	}
	if _, err = r.coll.InsertMany(ctx, docs); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", r.entity, sentinel.ErrConflict)
		}
		return fmt.Errorf("insert %d %s records: %w", len(recs), r.entity, err)
	}
	return nil
}

func (r repository[K, R]) replace(ctx context.Context, id K, rec R) (err error) {
	ctx, span := startSpan(ctx, "replace", r.coll.Name())
	defer func() { endSpan(span, err) }()

	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: id}}, rec)
	if err != nil {
		return fmt.Errorf("replace %s: %w", r.entity, err)
	}
	if res.MatchedCount == 0 {
		return r.notFound(id)
	}
	return nil
}

func (r repository[K, R]) delete(ctx context.Context, id K) (err error) {
	ctx, span := startSpan(ctx, "delete", r.coll.Name())
	defer func() { endSpan(span, err) }()

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.entity, err)
	}
	if res.DeletedCount == 0 {
		return r.notFound(id)
	}
	return nil
}

func (r repository[K, R]) exists(ctx context.Context, id K) (ok bool, err error) {
	ctx, span := startSpan(ctx, "exists", r.coll.Name())
	defer func() { endSpan(span, err) }()

	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count %s: %w", r.entity, err)
	}
	return n > 0, nil
}

// byID sorts by _id so listings are stable.
func byID() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
}
