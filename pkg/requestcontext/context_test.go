package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	id "realestate/pkg/domain"
)

func TestAccessors(t *testing.T) {
	t.Run("empty context", func(t *testing.T) {
		ctx := context.Background()
		assert.Empty(t, RequestID(ctx))
		assert.Empty(t, APIVersion(ctx))
		assert.WithinDuration(t, time.Now(), Now(ctx), time.Second)
	})

	t.Run("injected values", func(t *testing.T) {
		fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		ctx := WithRequestID(context.Background(), "req-1")
		ctx = WithTime(ctx, fixed)
		ctx = WithAPIVersion(ctx, id.APIVersionV1)

		assert.Equal(t, "req-1", RequestID(ctx))
		assert.Equal(t, fixed, Now(ctx))
		assert.Equal(t, id.APIVersionV1, APIVersion(ctx))
	})
}
