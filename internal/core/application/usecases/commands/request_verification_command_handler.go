package commands

import (
	"context"
	"time"
)

// VerificationPromptDelay is how long after delivery the customer is prompted
// to hand the order number to the rider.
const VerificationPromptDelay = 2 * time.Second

// RequestVerificationCommandHandler prompts customers of freshly delivered
// orders for delivery verification.
type RequestVerificationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRequestVerificationCommandHandler creates a handler for verification prompts.
func NewRequestVerificationCommandHandler(uowFactory OrderUoWFactory) RequestVerificationCommandHandler {
	return RequestVerificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks every order delivered at least VerificationPromptDelay ago as
// awaiting verification. Orders already prompted or verified are untouched.
func (h *RequestVerificationCommandHandler) Handle(ctx context.Context, cmd RequestVerificationCommand) error {
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

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllDeliveredUnprompted(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, aggregate := range orders {
		deliveredAt := aggregate.DeliveredAt()
		if deliveredAt == nil || now.Sub(*deliveredAt) < VerificationPromptDelay {
			continue
		}

		marked, err := aggregate.MarkAwaitingVerification()
		if err != nil {
			return err
		}
		if !marked {
			continue
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
