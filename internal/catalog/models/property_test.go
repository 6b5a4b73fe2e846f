package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	id "realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
)

type PropertySuite struct {
	suite.Suite
	now time.Time
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}

func (s *PropertySuite) SetupTest() {
	s.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func (s *PropertySuite) newValid() *Property {
	p, err := NewProperty("Casa Blanca", "Calle 1 #2-3", 250_000, "prop001", 2010, "owner-1", s.now)
	s.Require().NoError(err)
	return p
}

func (s *PropertySuite) assertInvalid(err error, field string) {
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation), "unexpected code: %v", err)
	s.Equal(field, dErrors.FieldOf(err))
}

func (s *PropertySuite) TestNewProperty_NormalizesFields() {
	p, err := NewProperty("  Casa Blanca ", " Calle 1 ", 250_000, " prop001 ", 2010, " owner-1 ", s.now)
	s.Require().NoError(err)

	s.NotEmpty(p.ID())
	s.Equal("Casa Blanca", p.Name())
	s.Equal("Calle 1", p.Address())
	s.Equal("PROP001", p.CodeInternal())
	s.Equal(id.OwnerID("owner-1"), p.OwnerID())
	s.Equal(250_000.0, p.Price())
	s.Equal(2010, p.Year())
	s.Empty(p.Images())
	s.Empty(p.Traces())
}

func (s *PropertySuite) TestPriceBoundaries() {
	s.Run("one billion accepted", func() {
		p := s.newValid()
		s.NoError(p.UpdatePrice(1_000_000_000))
		s.Equal(1_000_000_000.0, p.Price())
	})

	s.Run("above one billion rejected", func() {
		p := s.newValid()
		err := p.UpdatePrice(1_000_000_000.01)
		s.assertInvalid(err, "price")
		s.Contains(err.Error(), "cannot exceed 1 billion")
		s.Equal(250_000.0, p.Price())
	})

	s.Run("zero rejected", func() {
		_, err := NewProperty("Casa", "Calle", 0, "C1", 2010, "owner-1", s.now)
		s.assertInvalid(err, "price")
		s.Contains(err.Error(), "greater than zero")
	})

	s.Run("negative rejected", func() {
		s.assertInvalid(s.newValid().UpdatePrice(-1), "price")
	})
}

func (s *PropertySuite) TestYearBoundsFollowClock() {
	tests := []struct {
		name  string
		now   time.Time
		year  int
		valid bool
	}{
		{"lower bound", s.now, 1800, true},
		{"below lower bound", s.now, 1799, false},
		{"next year allowed", s.now, 2026, true},
		{"two years ahead rejected", s.now, 2027, false},
		{"bound moves with clock", s.now.AddDate(1, 0, 0), 2027, true},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			p := s.newValid()
			err := p.UpdateYear(tt.year, tt.now)
			if tt.valid {
				s.NoError(err)
				s.Equal(tt.year, p.Year())
				return
			}
			s.assertInvalid(err, "year")
			s.Contains(err.Error(), "year must be between 1800 and")
			s.Equal(2010, p.Year())
		})
	}
}

func (s *PropertySuite) TestTextRules() {
	s.Run("blank name rejected as empty", func() {
		err := s.newValid().UpdateName("   ")
		s.assertInvalid(err, "name")
		s.Contains(err.Error(), "cannot be empty")
	})

	s.Run("name at limit accepted", func() {
		s.NoError(s.newValid().UpdateName(strings.Repeat("n", MaxNameLength)))
	})

	s.Run("name over limit rejected", func() {
		p := s.newValid()
		err := p.UpdateName(strings.Repeat("n", MaxNameLength+1))
		s.assertInvalid(err, "name")
		s.Equal("Casa Blanca", p.Name())
	})

	s.Run("address over limit rejected", func() {
		s.assertInvalid(s.newValid().UpdateAddress(strings.Repeat("a", MaxAddressLength+1)), "address")
	})

	s.Run("code internal over limit rejected", func() {
		s.assertInvalid(s.newValid().UpdateCodeInternal(strings.Repeat("c", MaxCodeInternalLength+1)), "codeInternal")
	})

	s.Run("blank owner rejected", func() {
		s.assertInvalid(s.newValid().UpdateOwner(" "), "idOwner")
	})

	s.Run("malformed owner rejected", func() {
		p := s.newValid()
		err := p.UpdateOwner("owner\x00-1")
		s.assertInvalid(err, "idOwner")
		s.Contains(err.Error(), "owner id contains control characters")
		s.Equal(id.OwnerID("owner-1"), p.OwnerID())
	})

	s.Run("overlong owner rejected", func() {
		s.assertInvalid(s.newValid().UpdateOwner(strings.Repeat("o", 65)), "idOwner")
	})

	s.Run("limits count characters not bytes", func() {
		s.NoError(s.newValid().UpdateName(strings.Repeat("ñ", MaxNameLength)))
	})
}

func (s *PropertySuite) TestFailedMutatorLeavesOtherFields() {
	p := s.newValid()
	before := p.Record()

	s.Error(p.UpdateName(""))
	s.Error(p.UpdatePrice(0))
	s.Error(p.UpdateCodeInternal(""))
	s.Error(p.UpdateYear(1000, s.now))

	s.Equal(before, p.Record())
}

func (s *PropertySuite) TestImages() {
	s.Run("add keeps order and allows duplicates", func() {
		p := s.newValid()
		first, err := p.AddImage("https://cdn.example.com/a.jpg", true)
		s.Require().NoError(err)
		_, err = p.AddImage("https://cdn.example.com/a.jpg", false)
		s.Require().NoError(err)

		imgs := p.Images()
		s.Require().Len(imgs, 2)
		s.Equal(first.ID(), imgs[0].ID())
		s.Equal(p.ID(), imgs[0].PropertyID())
		s.False(imgs[1].Enabled())
	})

	s.Run("invalid file rejected", func() {
		p := s.newValid()
		_, err := p.AddImage("/relative/a.jpg", true)
		s.assertInvalid(err, "file")
		s.Empty(p.Images())
	})

	s.Run("remove", func() {
		p := s.newValid()
		img, err := p.AddImage("https://cdn.example.com/a.jpg", true)
		s.Require().NoError(err)

		s.False(p.RemoveImage(id.ImageID("missing")))
		s.Len(p.Images(), 1)
		s.True(p.RemoveImage(img.ID()))
		s.Empty(p.Images())
	})

	s.Run("read model primary image", func() {
		p := s.newValid()
		_, _ = p.AddImage("https://cdn.example.com/off.jpg", false)
		_, _ = p.AddImage("https://cdn.example.com/on.jpg", true)

		rm := p.WithImages()
		s.Equal(p.ID(), rm.ID)
		s.Len(rm.Images, 2)
		s.Equal("https://cdn.example.com/on.jpg", rm.PrimaryImage())
	})
}

func (s *PropertySuite) TestTraces() {
	p := s.newValid()
	_, err := p.AddTrace(s.now.AddDate(-2, 0, 0), "First sale", 100_000, 5_000, s.now)
	s.Require().NoError(err)
	_, err = p.AddTrace(s.now.AddDate(-1, 0, 0), "Second sale", 150_000, 0, s.now)
	s.Require().NoError(err)

	_, err = p.AddTrace(s.now.Add(time.Hour), "Future sale", 1, 0, s.now)
	s.assertInvalid(err, "dateSale")

	s.Len(p.Traces(), 2)
	s.Equal(250_000.0, p.TotalTracesValue())
}

func (s *PropertySuite) TestAge() {
	p := s.newValid()
	s.Equal(15, p.Age(s.now))
}

func (s *PropertySuite) TestRestoreRoundTrip() {
	p := s.newValid()
	_, _ = p.AddImage("https://cdn.example.com/a.jpg", true)
	_, _ = p.AddTrace(s.now.AddDate(-1, 0, 0), "Sale", 1_000, 10, s.now)

	var images []PropertyImageRecord
	for _, img := range p.Images() {
		images = append(images, img.Record())
	}
	var traces []PropertyTraceRecord
	for _, tr := range p.Traces() {
		traces = append(traces, tr.Record())
	}

	restored := RestoreProperty(p.Record(), images, traces)
	s.Equal(p.Record(), restored.Record())
	s.Equal(p.WithImages(), restored.WithImages())
	s.Equal(p.TotalTracesValue(), restored.TotalTracesValue())
}
