package kernel_test

import (
	"testing"

	"grocery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromCents(t *testing.T) {
	t.Run("should create money from non-negative cents", func(t *testing.T) {
		m, err := kernel.MoneyFromCents(1896)

		require.NoError(t, err)
		assert.Equal(t, int64(1896), m.Cents())
	})

	t.Run("should create zero money", func(t *testing.T) {
		m, err := kernel.MoneyFromCents(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should fail with negative cents", func(t *testing.T) {
		_, err := kernel.MoneyFromCents(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "money")
		assert.Contains(t, err.Error(), "negative")
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add amounts exactly", func(t *testing.T) {
		subtotal, _ := kernel.MoneyFromCents(1097)
		delivery, _ := kernel.MoneyFromCents(799)

		total := subtotal.Add(delivery)

		assert.Equal(t, int64(1896), total.Cents())
	})

	t.Run("should multiply by quantity", func(t *testing.T) {
		unitPrice, _ := kernel.MoneyFromCents(299)

		assert.Equal(t, int64(598), unitPrice.MultiplyBy(2).Cents())
		assert.Equal(t, int64(0), unitPrice.MultiplyBy(0).Cents())
	})

	t.Run("should compute percentage with half-up rounding", func(t *testing.T) {
		total, _ := kernel.MoneyFromCents(1896)

		// 10% of $18.96 is $1.896, rounded half up to $1.90
		assert.Equal(t, int64(190), total.Percent(10).Cents())
	})

	t.Run("should round percentage down below half a cent", func(t *testing.T) {
		total, _ := kernel.MoneyFromCents(1234)

		// 10% of $12.34 is $1.234, rounded to $1.23
		assert.Equal(t, int64(123), total.Percent(10).Cents())
	})
}

func TestMoney_String(t *testing.T) {
	t.Run("should format as dollars", func(t *testing.T) {
		m, _ := kernel.MoneyFromCents(1896)
		assert.Equal(t, "$18.96", m.String())
	})

	t.Run("should pad cents below ten", func(t *testing.T) {
		m, _ := kernel.MoneyFromCents(305)
		assert.Equal(t, "$3.05", m.String())
	})

	t.Run("should format zero", func(t *testing.T) {
		var m kernel.Money
		assert.Equal(t, "$0.00", m.String())
	})
}
