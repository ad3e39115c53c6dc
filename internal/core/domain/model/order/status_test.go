package order_test

import (
	"testing"

	"grocery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := map[order.Status]string{
		order.Unknown:        "unknown",
		order.Processing:     "processing",
		order.Preparing:      "preparing",
		order.ReadyForPickup: "ready_for_pickup",
		order.PickedUp:       "picked_up",
		order.InTransit:      "in_transit",
		order.Delivered:      "delivered",
	}

	for status, expected := range tests {
		t.Run("should format "+expected, func(t *testing.T) {
			assert.Equal(t, expected, status.String())
		})
	}

	t.Run("should format out of range value as unknown", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all lifecycle statuses", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Processing,
			order.Preparing,
			order.ReadyForPickup,
			order.PickedUp,
			order.InTransit,
			order.Delivered,
		} {
			assert.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject unknown", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
	})

	t.Run("should reject out of range value", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round trip every valid status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Processing,
			order.Preparing,
			order.ReadyForPickup,
			order.PickedUp,
			order.InTransit,
			order.Delivered,
		} {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown string", func(t *testing.T) {
		_, err := order.StatusFromString("cancelled")

		require.Error(t, err)
	})
}

func TestStatus_Next(t *testing.T) {
	t.Run("should follow the single lifecycle path", func(t *testing.T) {
		path := []order.Status{
			order.Processing,
			order.Preparing,
			order.ReadyForPickup,
			order.PickedUp,
			order.InTransit,
			order.Delivered,
		}

		for i := 0; i < len(path)-1; i++ {
			next, err := path[i].Next()
			require.NoError(t, err)
			assert.Equal(t, path[i+1], next)
		}
	})

	t.Run("should fail on delivered", func(t *testing.T) {
		_, err := order.Delivered.Next()

		require.Error(t, err)
	})

	t.Run("should fail on unknown", func(t *testing.T) {
		_, err := order.Unknown.Next()

		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should be terminal only for delivered", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.False(t, order.Processing.IsTerminal())
		assert.False(t, order.InTransit.IsTerminal())
	})
}

func TestStatus_StageIndex(t *testing.T) {
	t.Run("should number stages from zero", func(t *testing.T) {
		assert.Equal(t, 0, order.Processing.StageIndex())
		assert.Equal(t, 2, order.ReadyForPickup.StageIndex())
		assert.Equal(t, 5, order.Delivered.StageIndex())
	})
}
