package seed

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"realestate/internal/catalog/models"
	id "realestate/pkg/domain"
)

// Generator produces valid catalog entities with fake data. The same seed
// yields the same field values; ids are always fresh.
// A Generator is not safe for concurrent use.
type Generator struct {
	f   *gofakeit.Faker
	now time.Time
}

func NewGenerator(seed uint64, now time.Time) *Generator {
	return &Generator{f: gofakeit.New(seed), now: now}
}

// Owners generates adult owners with a photo and a birthday.
func (g *Generator) Owners(n int) ([]*models.Owner, error) {
	out := make([]*models.Owner, 0, n)
	oldest, youngest := g.now.AddDate(-98, 0, 0), g.now.AddDate(-18, 0, 0)
	for range n {
		birthday := g.f.DateRange(oldest, youngest)
		o, err := models.NewOwner(
			g.f.Name(),
			g.f.Address().Address,
			g.picsum(200, 200),
			&birthday,
			g.now,
		)
		if err != nil {
			return nil, fmt.Errorf("generate owner: %w", err)
		}
		out = append(out, o)
	}
	return out, nil
}

// Properties generates properties owned by randomly picked ownerIDs.
func (g *Generator) Properties(n int, ownerIDs []id.OwnerID) ([]*models.Property, error) {
	if n > 0 && len(ownerIDs) == 0 {
		return nil, errors.New("generate properties: no owners to assign")
	}
	out := make([]*models.Property, 0, n)
	for range n {
		p, err := models.NewProperty(
			g.f.Company()+" Property",
			g.f.Address().Address,
			g.money(50_000, 5_000_000),
			g.f.Regex("[A-Z0-9]{10}"),
			g.f.Number(1900, g.now.Year()),
			pick(g, ownerIDs).String(),
			g.now,
		)
		if err != nil {
			return nil, fmt.Errorf("generate property: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Images generates images for random properties; roughly 80% are enabled.
func (g *Generator) Images(n int, propertyIDs []id.PropertyID) ([]*models.PropertyImage, error) {
	if n > 0 && len(propertyIDs) == 0 {
		return nil, errors.New("generate images: no properties to attach to")
	}
	out := make([]*models.PropertyImage, 0, n)
	for range n {
		img, err := models.NewPropertyImage(
			pick(g, propertyIDs).String(),
			g.picsum(640, 480),
			g.f.Number(1, 10) <= 8,
		)
		if err != nil {
			return nil, fmt.Errorf("generate image: %w", err)
		}
		out = append(out, img)
	}
	return out, nil
}

// Traces generates sales within the last ten years for random properties.
func (g *Generator) Traces(n int, propertyIDs []id.PropertyID) ([]*models.PropertyTrace, error) {
	if n > 0 && len(propertyIDs) == 0 {
		return nil, errors.New("generate traces: no properties to attach to")
	}
	out := make([]*models.PropertyTrace, 0, n)
	for range n {
		t, err := models.NewPropertyTrace(
			pick(g, propertyIDs).String(),
			g.f.DateRange(g.now.AddDate(-10, 0, 0), g.now),
			g.f.Company(),
			g.money(10_000, 1_000_000),
			g.money(0, 50_000),
			g.now,
		)
		if err != nil {
			return nil, fmt.Errorf("generate trace: %w", err)
		}
		out = append(out, t)
	}
	return out, nil
}

func (g *Generator) picsum(w, h int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", strings.ToLower(g.f.LetterN(12)), w, h)
}

// money returns an amount in [lo, hi] rounded to cents.
func (g *Generator) money(lo, hi float64) float64 {
	return math.Round(g.f.Float64Range(lo, hi)*100) / 100
}

func pick[T any](g *Generator, items []T) T {
	return items[g.f.Number(0, len(items)-1)]
}
