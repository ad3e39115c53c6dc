package commands

import (
	"context"
)

// ApproveRiderPaymentCommandHandler handles commission payouts.
type ApproveRiderPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewApproveRiderPaymentCommandHandler creates a handler for payment approvals.
func NewApproveRiderPaymentCommandHandler(uowFactory PaymentUoWFactory) ApproveRiderPaymentCommandHandler {
	return ApproveRiderPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle approves the payment. Approving twice is an error surfaced from the domain.
func (h *ApproveRiderPaymentCommandHandler) Handle(ctx context.Context, cmd ApproveRiderPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	aggregate, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = aggregate.Approve(); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
