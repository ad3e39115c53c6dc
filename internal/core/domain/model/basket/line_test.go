package basket_test

import (
	"testing"

	"grocery/internal/core/domain/model/basket"
	"grocery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	price, err := kernel.MoneyFromCents(299)
	require.NoError(t, err)

	t.Run("should create valid line", func(t *testing.T) {
		line, err := basket.NewLine(kernel.NewUUID(), "Milk", price, 2, kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.Equal(t, "Milk", line.Name())
		assert.Equal(t, 2, line.Quantity())
		assert.Equal(t, int64(598), line.Total().Cents())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := basket.NewLine(kernel.NewUUID(), "", price, 2, kernel.NewUUID())

		require.Error(t, err)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := basket.NewLine(kernel.NewUUID(), "Milk", price, 0, kernel.NewUUID())

		require.Error(t, err)
	})

	t.Run("should fail with invalid product id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := basket.NewLine(invalidID, "Milk", price, 2, kernel.NewUUID())

		require.Error(t, err)
	})
}

func TestLine_WithQuantity(t *testing.T) {
	price, err := kernel.MoneyFromCents(299)
	require.NoError(t, err)

	t.Run("should return copy with new quantity", func(t *testing.T) {
		line, err := basket.NewLine(kernel.NewUUID(), "Milk", price, 2, kernel.NewUUID())
		require.NoError(t, err)

		updated, err := line.WithQuantity(5)

		require.NoError(t, err)
		assert.Equal(t, 5, updated.Quantity())
		assert.Equal(t, 2, line.Quantity())
		assert.True(t, updated.ProductID().IsEqual(line.ProductID()))
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		line, err := basket.NewLine(kernel.NewUUID(), "Milk", price, 2, kernel.NewUUID())
		require.NoError(t, err)

		_, err = line.WithQuantity(0)

		require.Error(t, err)
	})
}

func TestLine_Validate(t *testing.T) {
	t.Run("should fail for zero value line", func(t *testing.T) {
		var line basket.Line

		require.ErrorIs(t, line.Validate(), basket.ErrLineIsNotConstructed)
	})
}
