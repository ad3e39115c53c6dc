package kernel_test

import (
	"errors"
	"testing"

	"grocery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard(t *testing.T) {
	t.Run("should pass validation when constructed", func(t *testing.T) {
		g := kernel.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("should return custom error for zero value", func(t *testing.T) {
		var g kernel.ConstructorGuard
		customErr := errors.New("quote not constructed")

		err := g.Validate(customErr)

		require.Error(t, err)
		assert.Equal(t, customErr, err)
	})

	t.Run("should fall back to default error", func(t *testing.T) {
		var g kernel.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrDefaultConstructorGuard, err)
	})
}
