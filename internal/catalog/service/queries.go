package service

import (
	"context"

	"realestate/internal/catalog/filter"
	"realestate/internal/catalog/models"
	id "realestate/pkg/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// GetPropertiesQuery carries the optional parameters of a property listing.
// Nil Page and PageSize fall back to DefaultPage and DefaultPageSize.
type GetPropertiesQuery struct {
	Name     string
	Address  string
	MinPrice *float64
	MaxPrice *float64
	Page     *int
	PageSize *int
}

// PropertyPage is one page of a listing.
type PropertyPage struct {
	Items      []models.PropertyWithImages
	TotalCount int
	Page       int
	PageSize   int
}

// TotalPages is ceil(TotalCount/PageSize), or 0 when nothing matched.
func (p PropertyPage) TotalPages() int {
	if p.TotalCount <= 0 || p.PageSize <= 0 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

// Queries is the read-side entry point used by transports.
type Queries struct {
	svc *Service
}

func NewQueries(svc *Service) *Queries {
	return &Queries{svc: svc}
}

func (q *Queries) GetProperties(ctx context.Context, query GetPropertiesQuery) (*PropertyPage, error) {
	page, pageSize := DefaultPage, DefaultPageSize
	if query.Page != nil {
		page = *query.Page
	}
	if query.PageSize != nil {
		pageSize = *query.PageSize
	}

	criteria := filter.Criteria{
		Name:     query.Name,
		Address:  query.Address,
		MinPrice: query.MinPrice,
		MaxPrice: query.MaxPrice,
	}
	items, total, err := q.svc.GetFilteredProperties(ctx, criteria, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &PropertyPage{Items: items, TotalCount: total, Page: page, PageSize: pageSize}, nil
}

func (q *Queries) GetPropertyByID(ctx context.Context, propertyID id.PropertyID) (*models.PropertyWithImages, error) {
	return q.svc.GetProperty(ctx, propertyID)
}
