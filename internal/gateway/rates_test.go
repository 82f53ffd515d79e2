package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticRateConverter_Convert(t *testing.T) {
	converter := NewStaticRateConverter()
	ctx := context.Background()

	t.Run("same currency is identity", func(t *testing.T) {
		got, err := converter.Convert(ctx, 123.45, "EUR", "EUR")
		assert.NoError(t, err)
		assert.Equal(t, 123.45, got)
	})

	t.Run("cross currency", func(t *testing.T) {
		got, err := converter.Convert(ctx, 100, "EUR", "CHF")
		assert.NoError(t, err)
		assert.InDelta(t, 94.0, got, 0.001)
	})

	t.Run("round trip", func(t *testing.T) {
		chf, err := converter.Convert(ctx, 100, "USD", "CHF")
		assert.NoError(t, err)
		usd, err := converter.Convert(ctx, chf, "CHF", "USD")
		assert.NoError(t, err)
		assert.InDelta(t, 100.0, usd, 0.001)
	})

	t.Run("unknown source currency", func(t *testing.T) {
		_, err := converter.Convert(ctx, 100, "XAU", "EUR")
		assert.Error(t, err)
	})

	t.Run("unknown target currency", func(t *testing.T) {
		_, err := converter.Convert(ctx, 100, "EUR", "XAU")
		assert.Error(t, err)
	})
}
