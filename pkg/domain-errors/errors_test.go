package domainerrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	t.Run("matches direct error", func(t *testing.T) {
		err := New(CodeNotFound, "property not found")
		assert.True(t, HasCode(err, CodeNotFound))
		assert.False(t, HasCode(err, CodeInternal))
	})

	t.Run("matches through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("loading: %w", NewField(CodeValidation, "page", "page must be greater than 0"))
		assert.True(t, Is(err, CodeValidation))
		assert.Equal(t, "page", FieldOf(err))
	})

	t.Run("plain errors have no code", func(t *testing.T) {
		err := errors.New("boom")
		assert.False(t, HasCode(err, CodeInternal))
		assert.Equal(t, CodeInternal, CodeOf(err))
		assert.Empty(t, FieldOf(err))
	})
}

func TestWrap(t *testing.T) {
	t.Run("keeps cause reachable", func(t *testing.T) {
		err := Wrap(context.DeadlineExceeded, CodeInternal, "failed to filter properties")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, "failed to filter properties: context deadline exceeded", err.Error())
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "unused"))
	})
}
