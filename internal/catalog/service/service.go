package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
	"unicode/utf8"

	"realestate/internal/catalog/filter"
	"realestate/internal/catalog/metrics"
	"realestate/internal/catalog/models"
	id "realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
	"realestate/pkg/platform/sentinel"
	"realestate/pkg/requestcontext"
)

const (
	MaxPageSize = 100
)

// PropertyRepository is the persistence port used by the catalog queries.
type PropertyRepository interface {
	GetFiltered(ctx context.Context, criteria filter.Criteria, page, pageSize int) ([]models.PropertyWithImages, int, error)
	GetWithImagesByID(ctx context.Context, propertyID id.PropertyID) (*models.PropertyWithImages, error)
}

// BusinessRule post-processes a page of results. Rules run in order after a
// successful storage call and may narrow the page; they never see the count.
type BusinessRule func(ctx context.Context, items []models.PropertyWithImages) []models.PropertyWithImages

// Service validates property queries and delegates them to the repository.
type Service struct {
	repo    PropertyRepository
	rules   []BusinessRule
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithBusinessRules appends rules applied to every filtered page.
func WithBusinessRules(rules ...BusinessRule) Option {
	return func(s *Service) {
		s.rules = append(s.rules, rules...)
	}
}

// New constructs a Service.
func New(repo PropertyRepository, opts ...Option) *Service {
	s := &Service{repo: repo, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetFilteredProperties returns one page of properties matching criteria and
// the total number of matches. Parameters are validated before any storage
// call; the first failing rule is returned as a validation error.
func (s *Service) GetFilteredProperties(ctx context.Context, criteria filter.Criteria, page, pageSize int) ([]models.PropertyWithImages, int, error) {
	if err := validateQuery(criteria, page, pageSize); err != nil {
		s.metrics.IncrementRejected(dErrors.FieldOf(err))
		return nil, 0, err
	}

	start := time.Now()
	items, total, err := s.repo.GetFiltered(ctx, criteria, page, pageSize)
	if err != nil {
		if isContextErr(err) {
			return nil, 0, err
		}
		s.metrics.IncrementFailed()
		s.logger.ErrorContext(ctx, "failed to query properties",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
			"page", page,
			"page_size", pageSize,
		)
		return nil, 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to query properties")
	}

	for _, rule := range s.rules {
		items = rule(ctx, items)
	}
	s.metrics.ObserveQuery(start, len(items))
	return items, total, nil
}

// GetProperty returns a property with its images.
func (s *Service) GetProperty(ctx context.Context, propertyID id.PropertyID) (*models.PropertyWithImages, error) {
	p, err := s.repo.GetWithImagesByID(ctx, propertyID)
	if err != nil {
		if isContextErr(err) {
			return nil, err
		}
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncrementLookup("not_found")
			return nil, dErrors.NewField(dErrors.CodeNotFound, "id", fmt.Sprintf("property %s not found", propertyID))
		}
		s.metrics.IncrementLookup("error")
		s.logger.ErrorContext(ctx, "failed to load property",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
			"property_id", propertyID,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load property")
	}
	s.metrics.IncrementLookup("found")
	return p, nil
}

func validateQuery(c filter.Criteria, page, pageSize int) error {
	switch {
	case page < 1:
		return dErrors.NewField(dErrors.CodeValidation, "page", "page must be greater than 0")
	case pageSize < 1 || pageSize > MaxPageSize:
		return dErrors.NewField(dErrors.CodeValidation, "pageSize", fmt.Sprintf("page size must be between 1 and %d", MaxPageSize))
	case page-1 > math.MaxInt/pageSize:
		// the skip offset (page-1)*pageSize must not overflow
		return dErrors.NewField(dErrors.CodeValidation, "page", "page is out of range")
	case c.MinPrice != nil && !isFinite(*c.MinPrice):
		return dErrors.NewField(dErrors.CodeValidation, "minPrice", "min price must be a finite number")
	case c.MaxPrice != nil && !isFinite(*c.MaxPrice):
		return dErrors.NewField(dErrors.CodeValidation, "maxPrice", "max price must be a finite number")
	case c.MinPrice != nil && *c.MinPrice < 0:
		return dErrors.NewField(dErrors.CodeValidation, "minPrice", "min price cannot be negative")
	case c.MaxPrice != nil && *c.MaxPrice < 0:
		return dErrors.NewField(dErrors.CodeValidation, "maxPrice", "max price cannot be negative")
	case c.MinPrice != nil && c.MaxPrice != nil && *c.MinPrice > *c.MaxPrice:
		return dErrors.NewField(dErrors.CodeValidation, "minPrice", "min price cannot be greater than max price")
	case utf8.RuneCountInString(c.Name) > models.MaxNameLength:
		return dErrors.NewField(dErrors.CodeValidation, "name", fmt.Sprintf("name filter cannot exceed %d characters", models.MaxNameLength))
	case utf8.RuneCountInString(c.Address) > models.MaxAddressLength:
		return dErrors.NewField(dErrors.CodeValidation, "address", fmt.Sprintf("address filter cannot exceed %d characters", models.MaxAddressLength))
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// EnabledImagesOnly drops disabled images from every item of the page.
func EnabledImagesOnly(_ context.Context, items []models.PropertyWithImages) []models.PropertyWithImages {
	for i := range items {
		enabled := make([]models.PropertyImageRecord, 0, len(items[i].Images))
		for _, img := range items[i].Images {
			if img.Enabled {
				enabled = append(enabled, img)
			}
		}
		items[i].Images = enabled
	}
	return items
}
