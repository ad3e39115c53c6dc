package commands_test

import (
	"testing"
	"time"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func processingOrder(t *testing.T) *order.Order {
	t.Helper()
	ref, err := order.NewVendorRef(kernel.NewUUID(), "Fresh Market", "12 Market Lane")
	require.NoError(t, err)
	price, err := kernel.MoneyFromCents(299)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), "Milk", price, 2)
	require.NoError(t, err)
	quote, err := kernel.NewDeliveryQuote("123 Main St", 5.0)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewRandomOrderNumber(), ref, []order.Line{line}, quote, time.Now())
	require.NoError(t, err)
	return o
}

func TestAdvanceOrdersCommandHandler_Handle(t *testing.T) {
	t.Run("should advance each order one stage and publish changes", func(t *testing.T) {
		ctx := t.Context()
		first := processingOrder(t)
		second := processingOrder(t)
		_, err := second.Advance(time.Now())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("GetAllUndelivered", ctx).Return([]*order.Order{first, second}, nil).Once(),
			repo.On("Update", ctx, first).Return(nil).Once(),
			repo.On("Update", ctx, second).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		publisher := new(MockEventPublisher)
		publisher.On("PublishOrderStatusChanged", ctx, first).Return(nil).Once()
		publisher.On("PublishOrderStatusChanged", ctx, second).Return(nil).Once()

		h := commands.NewAdvanceOrdersCommandHandler(factory, publisher, discardLogger())
		require.NoError(t, h.Handle(ctx, commands.NewAdvanceOrdersCommand()))

		assert.Equal(t, order.Preparing, first.Status())
		assert.Equal(t, order.ReadyForPickup, second.Status())
		publisher.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("should do nothing when no orders are active", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("GetAllUndelivered", ctx).Return([]*order.Order{}, nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		publisher := new(MockEventPublisher)

		h := commands.NewAdvanceOrdersCommandHandler(factory, publisher, discardLogger())
		require.NoError(t, h.Handle(ctx, commands.NewAdvanceOrdersCommand()))

		publisher.AssertNotCalled(t, "PublishOrderStatusChanged", mock.Anything, mock.Anything)
	})
}
