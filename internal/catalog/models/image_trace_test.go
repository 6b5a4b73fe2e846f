package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "realestate/pkg/domain-errors"
)

func TestPropertyImage(t *testing.T) {
	t.Run("toggle", func(t *testing.T) {
		img, err := NewPropertyImage("prop-1", "https://cdn.example.com/a.jpg", true)
		require.NoError(t, err)

		img.ToggleEnabled()
		assert.False(t, img.Enabled())
		img.Enable()
		assert.True(t, img.Enabled())
		img.Disable()
		assert.False(t, img.Enabled())
	})

	t.Run("requires property id", func(t *testing.T) {
		_, err := NewPropertyImage(" ", "https://cdn.example.com/a.jpg", true)
		require.Error(t, err)
		assert.Equal(t, "idProperty", dErrors.FieldOf(err))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("property id is trimmed and must be printable", func(t *testing.T) {
		img, err := NewPropertyImage(" prop-1 ", "https://cdn.example.com/a.jpg", true)
		require.NoError(t, err)
		assert.Equal(t, "prop-1", img.PropertyID().String())

		_, err = NewPropertyTrace("prop\n1", time.Now().AddDate(-1, 0, 0), "Sale", 1, 0, time.Now())
		require.Error(t, err)
		assert.Equal(t, "idProperty", dErrors.FieldOf(err))
	})

	t.Run("requires absolute url", func(t *testing.T) {
		for _, file := range []string{"", "a.jpg", "/img/a.jpg", "//cdn.example.com/a.jpg"} {
			_, err := NewPropertyImage("prop-1", file, true)
			require.Error(t, err, file)
			assert.Equal(t, "file", dErrors.FieldOf(err))
		}
	})
}

func TestPropertyTrace(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("derived amounts", func(t *testing.T) {
		tr, err := NewPropertyTrace("prop-1", now.AddDate(0, -1, 0), "Sale", 200_000, 10_000, now)
		require.NoError(t, err)
		assert.Equal(t, 210_000.0, tr.TotalAmount())
		assert.InDelta(t, 5.0, tr.TaxPercentage(), 1e-9)
	})

	t.Run("zero tax allowed", func(t *testing.T) {
		tr, err := NewPropertyTrace("prop-1", now, "Sale", 1, 0, now)
		require.NoError(t, err)
		assert.Equal(t, 0.0, tr.TaxPercentage())
	})

	t.Run("restored zero value has zero percentage", func(t *testing.T) {
		tr := RestorePropertyTrace(PropertyTraceRecord{Value: 0, Tax: 10})
		assert.Equal(t, 0.0, tr.TaxPercentage())
	})

	t.Run("rules", func(t *testing.T) {
		tests := []struct {
			name  string
			date  time.Time
			value float64
			tax   float64
			field string
		}{
			{"future sale", now.Add(time.Second), 1, 0, "dateSale"},
			{"zero value", now, 0, 0, "value"},
			{"negative tax", now, 1, -0.01, "tax"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewPropertyTrace("prop-1", tt.date, "Sale", tt.value, tt.tax, now)
				require.Error(t, err)
				assert.Equal(t, tt.field, dErrors.FieldOf(err))
			})
		}
	})
}
