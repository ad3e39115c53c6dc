package commands_test

import (
	"testing"
	"time"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingPayment(t *testing.T) *payment.RiderPayment {
	t.Helper()
	total, err := kernel.MoneyFromCents(1896)
	require.NoError(t, err)
	p, err := payment.NewCommission(
		kernel.NewUUID(), kernel.NewRandomOrderNumber(), total, time.Now())
	require.NoError(t, err)
	return p
}

func TestApproveRiderPaymentCommandHandler_Handle(t *testing.T) {
	t.Run("should approve pending payment", func(t *testing.T) {
		ctx := t.Context()
		p := pendingPayment(t)
		cmd, err := commands.NewApproveRiderPaymentCommand(p.ID())
		require.NoError(t, err)

		repo := new(MockPaymentRepository)
		uow := new(MockPaymentUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("PaymentRepository").Return(repo).Once(),
			repo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
			repo.On("Update", ctx, p).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockPaymentUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewApproveRiderPaymentCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, payment.StatusApproved, p.Status())
		repo.AssertExpectations(t)
	})

	t.Run("should fail on already approved payment", func(t *testing.T) {
		ctx := t.Context()
		p := pendingPayment(t)
		require.NoError(t, p.Approve())
		cmd, err := commands.NewApproveRiderPaymentCommand(p.ID())
		require.NoError(t, err)

		repo := new(MockPaymentRepository)
		uow := new(MockPaymentUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("PaymentRepository").Return(repo).Once(),
			repo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockPaymentUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewApproveRiderPaymentCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, payment.ErrPaymentAlreadyApproved)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
