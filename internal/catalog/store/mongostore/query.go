package mongostore

import (
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"realestate/internal/catalog/filter"
)

// ToBSON translates a predicate tree into a MongoDB query document.
func ToBSON(p filter.Predicate) (bson.D, error) {
	switch p := p.(type) {
	case nil, filter.MatchAll:
		return bson.D{}, nil
	case filter.Text:
		return bson.D{{Key: "$text", Value: bson.D{{Key: "$search", Value: p.Term}}}}, nil
	case filter.Range:
		op, err := rangeOperator(p.Op)
		if err != nil {
			return nil, err
		}
		return bson.D{{Key: p.Field, Value: bson.D{{Key: op, Value: p.Value}}}}, nil
	case filter.And:
		if len(p.Children) == 0 {
			return bson.D{}, nil
		}
		if len(p.Children) == 1 {
			return ToBSON(p.Children[0])
		}
		clauses := make(bson.A, 0, len(p.Children))
		for _, child := range p.Children {
			doc, err := ToBSON(child)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, doc)
		}
		return bson.D{{Key: "$and", Value: clauses}}, nil
	default:
		return nil, fmt.Errorf("unsupported predicate %T", p)
	}
}

func rangeOperator(op filter.Op) (string, error) {
	switch op {
	case filter.OpGte:
		return "$gte", nil
	case filter.OpLte:
		return "$lte", nil
	default:
		return "", fmt.Errorf("unsupported range operator %q", op)
	}
}

// propertyWithImagesProjection keeps the property scalars and the joined images.
var propertyWithImagesProjection = bson.D{
	{Key: "_id", Value: 1},
	{Key: "name", Value: 1},
	{Key: "address", Value: 1},
	{Key: "price", Value: 1},
	{Key: "codeInternal", Value: 1},
	{Key: "year", Value: 1},
	{Key: "idOwner", Value: 1},
	{Key: "images", Value: 1},
}

// imagesLookup left-joins PropertyImages by idProperty. Properties without
// images keep an empty array, so the join never drops a parent document.
func imagesLookup() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: CollectionImages},
		{Key: "localField", Value: "_id"},
		{Key: "foreignField", Value: "idProperty"},
		{Key: "as", Value: "images"},
	}}}
}

// filteredPipeline is match, sort by _id, join images, project, skip, limit.
func filteredPipeline(match bson.D, page, pageSize int) mongo.Pipeline {
	skip := skipFor(page, pageSize)
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		imagesLookup(),
		{{Key: "$project", Value: propertyWithImagesProjection}},
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: int64(pageSize)}},
	}
}

// skipFor returns the number of documents before page. Offsets past the
// int64 range saturate, which yields an empty page.
func skipFor(page, pageSize int) int64 {
	if page < 1 || pageSize < 1 {
		return 0
	}
	n := int64(page - 1)
	if n > math.MaxInt64/int64(pageSize) {
		return math.MaxInt64
	}
	return n * int64(pageSize)
}

func byIDPipeline(id any) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		imagesLookup(),
		{{Key: "$project", Value: propertyWithImagesProjection}},
		{{Key: "$limit", Value: int64(1)}},
	}
}
