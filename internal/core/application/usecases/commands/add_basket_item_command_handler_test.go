package commands_test

import (
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/basket"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddBasketItemCommandHandler_Handle(t *testing.T) {
	t.Run("should create basket on first add", func(t *testing.T) {
		ctx := t.Context()
		v := testVendor(t)
		p := testProduct(t, v, "Milk", 299)
		basketID := kernel.NewUUID()
		cmd, err := commands.NewAddBasketItemCommand(basketID, p.ID(), 2, false)
		require.NoError(t, err)

		catalog := new(MockProductCatalog)
		catalog.On("GetProduct", ctx, p.ID()).Return(p, nil).Once()
		vendors := new(MockVendorRepository)
		vendors.On("Get", ctx, v.ID()).Return(v, nil).Once()

		repo := new(MockBasketRepository)
		uow := new(MockBasketUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("BasketRepository").Return(repo).Once(),
			repo.On("Get", ctx, basketID).
				Return(nil, errs.NewObjectNotFoundError("basketId", basketID.String())).Once(),
			repo.On("Save", ctx, mock.AnythingOfType("*basket.Basket")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockBasketUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAddBasketItemCommandHandler(factory, catalog, vendors)
		require.NoError(t, h.Handle(ctx, cmd))

		saved := repo.Calls[1].Arguments.Get(1).(*basket.Basket)
		require.Len(t, saved.Lines(), 1)
		assert.Equal(t, 2, saved.Lines()[0].Quantity())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should surface vendor conflict without replace flag", func(t *testing.T) {
		ctx := t.Context()
		existingVendor := testVendor(t)
		otherVendor := testVendor(t)
		p := testProduct(t, otherVendor, "Juice", 399)
		existing := testBasket(t, existingVendor)
		cmd, err := commands.NewAddBasketItemCommand(existing.ID(), p.ID(), 1, false)
		require.NoError(t, err)

		catalog := new(MockProductCatalog)
		catalog.On("GetProduct", ctx, p.ID()).Return(p, nil).Once()
		vendors := new(MockVendorRepository)
		vendors.On("Get", ctx, otherVendor.ID()).Return(otherVendor, nil).Once()

		repo := new(MockBasketRepository)
		uow := new(MockBasketUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("BasketRepository").Return(repo).Once(),
			repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockBasketUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAddBasketItemCommandHandler(factory, catalog, vendors)
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, basket.ErrVendorConflict)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should replace basket on confirmed vendor switch", func(t *testing.T) {
		ctx := t.Context()
		existingVendor := testVendor(t)
		otherVendor := testVendor(t)
		p := testProduct(t, otherVendor, "Juice", 399)
		existing := testBasket(t, existingVendor)
		cmd, err := commands.NewAddBasketItemCommand(existing.ID(), p.ID(), 1, true)
		require.NoError(t, err)

		catalog := new(MockProductCatalog)
		catalog.On("GetProduct", ctx, p.ID()).Return(p, nil).Once()
		vendors := new(MockVendorRepository)
		vendors.On("Get", ctx, otherVendor.ID()).Return(otherVendor, nil).Once()

		repo := new(MockBasketRepository)
		uow := new(MockBasketUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("BasketRepository").Return(repo).Once(),
			repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
			repo.On("Save", ctx, mock.AnythingOfType("*basket.Basket")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockBasketUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAddBasketItemCommandHandler(factory, catalog, vendors)
		require.NoError(t, h.Handle(ctx, cmd))

		require.Len(t, existing.Lines(), 1)
		assert.True(t, existing.Lines()[0].ProductID().IsEqual(p.ID()))
		assert.True(t, existing.Vendor().ID().IsEqual(otherVendor.ID()))
	})

	t.Run("should fail when command not constructed", func(t *testing.T) {
		h := commands.NewAddBasketItemCommandHandler(
			new(MockBasketUoWFactory), new(MockProductCatalog), new(MockVendorRepository))

		err := h.Handle(t.Context(), commands.AddBasketItemCommand{})

		require.Error(t, err)
	})

	t.Run("should fail when product is unknown", func(t *testing.T) {
		ctx := t.Context()
		productID := kernel.NewUUID()
		cmd, err := commands.NewAddBasketItemCommand(kernel.NewUUID(), productID, 1, false)
		require.NoError(t, err)

		catalog := new(MockProductCatalog)
		catalog.On("GetProduct", ctx, productID).
			Return(nil, errs.NewObjectNotFoundError("productId", productID.String())).Once()

		h := commands.NewAddBasketItemCommandHandler(
			new(MockBasketUoWFactory), catalog, new(MockVendorRepository))
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
