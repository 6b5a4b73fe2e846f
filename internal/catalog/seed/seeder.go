// Package seed fills a catalog store with generated data.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"realestate/internal/catalog/models"
	id "realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
	"realestate/pkg/requestcontext"
)

// BulkInserter stores a batch of entities in one call.
type BulkInserter[T any] interface {
	AddMany(ctx context.Context, items []T) error
}

type IndexEnsurer interface {
	EnsureIndexes(ctx context.Context)
}

// Targets are the stores the seeder writes to.
type Targets struct {
	Owners     BulkInserter[*models.Owner]
	Properties BulkInserter[*models.Property]
	Images     BulkInserter[*models.PropertyImage]
	Traces     BulkInserter[*models.PropertyTrace]
	Indexes    IndexEnsurer
}

type Options struct {
	Owners      int
	Properties  int
	Images      int
	Traces      int
	BatchSize   int
	Concurrency int
	Seed        uint64
}

func DefaultOptions() Options {
	return Options{
		Owners:      1000,
		Properties:  5000,
		Images:      15000,
		Traces:      10000,
		BatchSize:   1000,
		Concurrency: 4,
		Seed:        1,
	}
}

func (o Options) Validate() error {
	switch {
	case o.Owners < 0 || o.Properties < 0 || o.Images < 0 || o.Traces < 0:
		return dErrors.New(dErrors.CodeInvalidInput, "counts cannot be negative")
	case o.BatchSize < 1:
		return dErrors.NewField(dErrors.CodeInvalidInput, "batchSize", "batch size must be greater than 0")
	case o.Concurrency < 1:
		return dErrors.NewField(dErrors.CodeInvalidInput, "concurrency", "concurrency must be greater than 0")
	case o.Properties > 0 && o.Owners == 0:
		return dErrors.NewField(dErrors.CodeInvalidInput, "owners", "properties need at least one owner")
	case (o.Images > 0 || o.Traces > 0) && o.Properties == 0:
		return dErrors.NewField(dErrors.CodeInvalidInput, "properties", "images and traces need at least one property")
	}
	return nil
}

// Summary counts what was inserted.
type Summary struct {
	Owners     int
	Properties int
	Images     int
	Traces     int
}

type Seeder struct {
	targets Targets
	logger  *slog.Logger
}

func New(targets Targets, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{targets: targets, logger: logger}
}

// Seed inserts owners, then properties, ensures indexes, then images and
// traces. Each collection is written in batches; batches of one collection
// run concurrently and complete before the next collection starts.
func (s *Seeder) Seed(ctx context.Context, opts Options) (Summary, error) {
	if err := opts.Validate(); err != nil {
		return Summary{}, err
	}
	gen := NewGenerator(opts.Seed, requestcontext.Now(ctx))
	s.logger.InfoContext(ctx, "seeding catalog",
		"owners", opts.Owners,
		"properties", opts.Properties,
		"images", opts.Images,
		"traces", opts.Traces,
		"batch_size", opts.BatchSize,
	)

	var sum Summary

	owners, err := gen.Owners(opts.Owners)
	if err != nil {
		return sum, err
	}
	if err := insertBatches(ctx, s.logger, "owners", s.targets.Owners, owners, opts); err != nil {
		return sum, err
	}
	sum.Owners = len(owners)

	ownerIDs := make([]id.OwnerID, len(owners))
	for i, o := range owners {
		ownerIDs[i] = o.ID()
	}
	properties, err := gen.Properties(opts.Properties, ownerIDs)
	if err != nil {
		return sum, err
	}
	if err := insertBatches(ctx, s.logger, "properties", s.targets.Properties, properties, opts); err != nil {
		return sum, err
	}
	sum.Properties = len(properties)

	if s.targets.Indexes != nil {
		s.targets.Indexes.EnsureIndexes(ctx)
	}

	propertyIDs := make([]id.PropertyID, len(properties))
	for i, p := range properties {
		propertyIDs[i] = p.ID()
	}
	images, err := gen.Images(opts.Images, propertyIDs)
	if err != nil {
		return sum, err
	}
	if err := insertBatches(ctx, s.logger, "images", s.targets.Images, images, opts); err != nil {
		return sum, err
	}
	sum.Images = len(images)

	traces, err := gen.Traces(opts.Traces, propertyIDs)
	if err != nil {
		return sum, err
	}
	if err := insertBatches(ctx, s.logger, "traces", s.targets.Traces, traces, opts); err != nil {
		return sum, err
	}
	sum.Traces = len(traces)

	s.logger.InfoContext(ctx, "seeding completed",
		"owners", sum.Owners,
		"properties", sum.Properties,
		"images", sum.Images,
		"traces", sum.Traces,
	)
	return sum, nil
}

// insertBatches writes items in BatchSize chunks with at most Concurrency
// batches in flight. The first failure cancels the remaining batches.
func insertBatches[T any](ctx context.Context, logger *slog.Logger, label string, ins BulkInserter[T], items []T, opts Options) error {
	if len(items) == 0 {
		return nil
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for start := 0; start < len(items); start += opts.BatchSize {
		batch := items[start:min(start+opts.BatchSize, len(items))]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := ins.AddMany(ctx, batch); err != nil {
				return fmt.Errorf("seed %s: %w", label, err)
			}
			logger.DebugContext(ctx, "seeded batch", "collection", label, "count", len(batch))
			return nil
		})
	}
	return g.Wait()
}
