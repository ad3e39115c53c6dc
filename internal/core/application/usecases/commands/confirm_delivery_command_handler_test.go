package commands_test

import (
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/payment"
	"grocery/internal/core/domain/model/rider"
	"grocery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmDeliveryCommandHandler_Handle(t *testing.T) {
	t.Run("should verify delivery and create commission once", func(t *testing.T) {
		ctx := t.Context()
		o := testDeliveredOrder(t)
		best := testActiveRider(t, "Thabo", 4.9)
		other := testActiveRider(t, "Sipho", 4.2)
		cmd, err := commands.NewConfirmDeliveryCommand(o.Number())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		riderRepo := new(MockRiderRepository)
		paymentRepo := new(MockPaymentRepository)
		uow := new(MockDeliveryUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, o.Number()).Return(o, nil).Once(),
			uow.On("RiderRepository").Return(riderRepo).Once(),
			riderRepo.On("GetAllActive", ctx).Return([]*rider.Rider{other, best}, nil).Once(),
			orderRepo.On("Update", ctx, o).Return(nil).Once(),
			uow.On("PaymentRepository").Return(paymentRepo).Once(),
			paymentRepo.On("Add", ctx, mock.AnythingOfType("*payment.RiderPayment")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(uow).Once()

		publisher := new(MockEventPublisher)
		publisher.On("PublishRiderPaymentCreated", ctx, mock.AnythingOfType("*payment.RiderPayment")).
			Return(nil).Once()

		h := commands.NewConfirmDeliveryCommandHandler(
			factory, services.NewRiderSelector(), publisher, discardLogger())
		require.NoError(t, h.Handle(ctx, cmd))

		assert.True(t, o.IsDeliveryVerified())
		assert.True(t, o.RiderID().IsEqual(best.ID()))

		created := paymentRepo.Calls[0].Arguments.Get(1).(*payment.RiderPayment)
		assert.True(t, created.RiderID().IsEqual(best.ID()))
		assert.True(t, created.OrderNumber().IsEqual(o.Number()))
		// 10% of the $10.97 + $7.99 total, rounded half up
		assert.Equal(t, int64(190), created.Amount().Cents())
		assert.Equal(t, payment.StatusPending, created.Status())
		uow.AssertExpectations(t)
	})

	t.Run("should be no-op on repeat confirmation", func(t *testing.T) {
		ctx := t.Context()
		o := testDeliveredOrder(t)
		firstRider := testActiveRider(t, "Thabo", 4.9)
		confirmed, err := o.ConfirmDelivery(firstRider.ID())
		require.NoError(t, err)
		require.True(t, confirmed)

		cmd, err := commands.NewConfirmDeliveryCommand(o.Number())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockDeliveryUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, o.Number()).Return(o, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(uow).Once()

		publisher := new(MockEventPublisher)

		h := commands.NewConfirmDeliveryCommandHandler(
			factory, services.NewRiderSelector(), publisher, discardLogger())
		require.NoError(t, h.Handle(ctx, cmd))

		// the original rider stays and no second payment is created
		assert.True(t, o.RiderID().IsEqual(firstRider.ID()))
		publisher.AssertNotCalled(t, "PublishRiderPaymentCreated", mock.Anything, mock.Anything)
		orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should fail before delivery", func(t *testing.T) {
		ctx := t.Context()
		o := processingOrder(t)
		active := testActiveRider(t, "Thabo", 4.9)
		cmd, err := commands.NewConfirmDeliveryCommand(o.Number())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		riderRepo := new(MockRiderRepository)
		uow := new(MockDeliveryUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, o.Number()).Return(o, nil).Once(),
			uow.On("RiderRepository").Return(riderRepo).Once(),
			riderRepo.On("GetAllActive", ctx).Return([]*rider.Rider{active}, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewConfirmDeliveryCommandHandler(
			factory, services.NewRiderSelector(), new(MockEventPublisher), discardLogger())
		err = h.Handle(ctx, cmd)

		require.Error(t, err)
	})

	t.Run("should fail when no riders are active", func(t *testing.T) {
		ctx := t.Context()
		o := testDeliveredOrder(t)
		cmd, err := commands.NewConfirmDeliveryCommand(o.Number())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		riderRepo := new(MockRiderRepository)
		uow := new(MockDeliveryUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, o.Number()).Return(o, nil).Once(),
			uow.On("RiderRepository").Return(riderRepo).Once(),
			riderRepo.On("GetAllActive", ctx).Return([]*rider.Rider{}, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewConfirmDeliveryCommandHandler(
			factory, services.NewRiderSelector(), new(MockEventPublisher), discardLogger())
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, services.ErrNoRidersAvailable)
	})
}
