package service

import (
	"context"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"realestate/internal/catalog/filter"
	"realestate/internal/catalog/models"
	id "realestate/pkg/domain"
)

// countingRepo records calls without involving gomock, so rapid can create
// thousands of them.
type countingRepo struct {
	calls int
}

func (r *countingRepo) GetFiltered(context.Context, filter.Criteria, int, int) ([]models.PropertyWithImages, int, error) {
	r.calls++
	return []models.PropertyWithImages{}, 0, nil
}

func (r *countingRepo) GetWithImagesByID(context.Context, id.PropertyID) (*models.PropertyWithImages, error) {
	r.calls++
	return nil, nil
}

func validCriteria(t *rapid.T) filter.Criteria {
	c := filter.Criteria{
		Name:    strings.Repeat("x", rapid.IntRange(0, models.MaxNameLength).Draw(t, "nameLen")),
		Address: strings.Repeat("y", rapid.IntRange(0, models.MaxAddressLength).Draw(t, "addressLen")),
	}
	if rapid.Bool().Draw(t, "hasMin") {
		v := rapid.Float64Range(0, 1_000_000).Draw(t, "min")
		c.MinPrice = &v
	}
	if rapid.Bool().Draw(t, "hasMax") {
		lo := 0.0
		if c.MinPrice != nil {
			lo = *c.MinPrice
		}
		v := rapid.Float64Range(lo, 2_000_000).Draw(t, "max")
		c.MaxPrice = &v
	}
	return c
}

func TestValidParametersAlwaysReachStorage_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		repo := &countingRepo{}
		svc := New(repo)
		page := rapid.IntRange(1, 10_000).Draw(t, "page")
		pageSize := rapid.IntRange(1, MaxPageSize).Draw(t, "pageSize")

		if _, _, err := svc.GetFilteredProperties(context.Background(), validCriteria(t), page, pageSize); err != nil {
			t.Fatalf("valid parameters rejected: %v", err)
		}
		if repo.calls != 1 {
			t.Fatalf("expected one storage call, got %d", repo.calls)
		}
	})
}

func TestInvalidPagingNeverReachesStorage_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		repo := &countingRepo{}
		svc := New(repo)
		page := rapid.IntRange(-1000, 0).Draw(t, "page")
		pageSize := rapid.IntRange(-1000, 1000).Draw(t, "pageSize")

		if _, _, err := svc.GetFilteredProperties(context.Background(), filter.Criteria{}, page, pageSize); err == nil {
			t.Fatal("expected validation error")
		}
		if repo.calls != 0 {
			t.Fatalf("storage called %d times", repo.calls)
		}
	})
}

func TestTotalPagesLaw_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(0, 1_000_000).Draw(t, "total")
		size := rapid.IntRange(1, MaxPageSize).Draw(t, "size")
		pages := PropertyPage{TotalCount: total, PageSize: size}.TotalPages()

		if total == 0 {
			if pages != 0 {
				t.Fatalf("empty result has %d pages", pages)
			}
			return
		}
		if (pages-1)*size >= total || pages*size < total {
			t.Fatalf("totalPages %d does not cover %d items of page size %d", pages, total, size)
		}
	})
}
