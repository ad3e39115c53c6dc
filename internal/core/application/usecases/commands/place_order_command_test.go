package commands_test

import (
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	basketID := kernel.NewUUID()

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(
			basketID, "Jane Doe", "4111111111111111", "09/27", "123")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("should accept card number with spaces", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			basketID, "Jane Doe", "4111 1111 1111 1111", "09/27", "123")

		require.NoError(t, err)
	})

	t.Run("should accept four digit cvv", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			basketID, "Jane Doe", "4111111111111111", "09/27", "1234")

		require.NoError(t, err)
	})

	t.Run("should require card holder", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			basketID, "  ", "4111111111111111", "09/27", "123")

		require.ErrorIs(t, err, commands.ErrCardHolderIsRequired)
	})

	t.Run("should reject short card number", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			basketID, "Jane Doe", "41111111", "09/27", "123")

		require.ErrorIs(t, err, commands.ErrCardNumberIsInvalid)
	})

	t.Run("should reject card number with letters", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			basketID, "Jane Doe", "4111x11111111111", "09/27", "123")

		require.ErrorIs(t, err, commands.ErrCardNumberIsInvalid)
	})

	t.Run("should reject month thirteen", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			basketID, "Jane Doe", "4111111111111111", "13/27", "123")

		require.ErrorIs(t, err, commands.ErrCardExpiryIsInvalid)
	})

	t.Run("should reject month zero", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			basketID, "Jane Doe", "4111111111111111", "00/27", "123")

		require.ErrorIs(t, err, commands.ErrCardExpiryIsInvalid)
	})

	t.Run("should reject expiry without slash", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			basketID, "Jane Doe", "4111111111111111", "0927", "123")

		require.ErrorIs(t, err, commands.ErrCardExpiryIsInvalid)
	})

	t.Run("should reject short cvv", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			basketID, "Jane Doe", "4111111111111111", "09/27", "12")

		require.ErrorIs(t, err, commands.ErrCardCVVIsInvalid)
	})

	t.Run("should report every invalid field at once", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(basketID, "", "411", "9/27", "1")

		require.ErrorIs(t, err, commands.ErrCardHolderIsRequired)
		require.ErrorIs(t, err, commands.ErrCardNumberIsInvalid)
		require.ErrorIs(t, err, commands.ErrCardExpiryIsInvalid)
		require.ErrorIs(t, err, commands.ErrCardCVVIsInvalid)
	})
}
