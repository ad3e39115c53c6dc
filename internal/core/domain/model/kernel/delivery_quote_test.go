package kernel_test

import (
	"testing"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryQuote(t *testing.T) {
	t.Run("should price delivery from distance", func(t *testing.T) {
		quote, err := kernel.NewDeliveryQuote("123 Main St, Anytown", 5.0)

		require.NoError(t, err)
		require.NoError(t, quote.Validate())
		assert.Equal(t, "123 Main St, Anytown", quote.Address())
		assert.InDelta(t, 5.0, quote.DistanceKm(), 0.0001)
		assert.Equal(t, int64(799), quote.Cost().Cents()) // $2.99 + $5.00
		assert.Equal(t, 45, quote.EstimatedMinutes())     // 30 + 15
	})

	t.Run("should floor the per-km minutes", func(t *testing.T) {
		quote, err := kernel.NewDeliveryQuote("456 Oak Ave", 2.5)

		require.NoError(t, err)
		assert.Equal(t, int64(549), quote.Cost().Cents())
		assert.Equal(t, 37, quote.EstimatedMinutes()) // 30 + floor(7.5)
	})

	t.Run("should round cost to the nearest cent", func(t *testing.T) {
		quote, err := kernel.NewDeliveryQuote("789 Pine Rd", 3.456)

		require.NoError(t, err)
		assert.Equal(t, int64(299+346), quote.Cost().Cents())
	})

	t.Run("should hold the pricing formula across the distance range", func(t *testing.T) {
		for _, d := range []float64{1.0, 1.5, 4.2, 7.77, 9.99} {
			quote, err := kernel.NewDeliveryQuote("1 Test Way", d)

			require.NoError(t, err)
			assert.Equal(t, int64(299)+int64(d*100+0.5), quote.Cost().Cents())
			assert.Equal(t, 30+int(d*3), quote.EstimatedMinutes())
		}
	})

	t.Run("should reject blank address", func(t *testing.T) {
		_, err := kernel.NewDeliveryQuote("   ", 5.0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty address", func(t *testing.T) {
		_, err := kernel.NewDeliveryQuote("", 5.0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject distance below minimum", func(t *testing.T) {
		_, err := kernel.NewDeliveryQuote("123 Main St", 0.5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject distance above maximum", func(t *testing.T) {
		_, err := kernel.NewDeliveryQuote("123 Main St", 12.0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should join address and distance errors", func(t *testing.T) {
		_, err := kernel.NewDeliveryQuote("", 0.0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "address")
		assert.Contains(t, err.Error(), "distanceKm")
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var quote kernel.DeliveryQuote

		err := quote.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrDeliveryQuoteIsNotConstructed, err)
	})
}
