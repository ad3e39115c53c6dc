package commands

import (
	"context"
	"log/slog"
	"time"

	"grocery/internal/core/domain/model/payment"
	"grocery/internal/core/domain/services"
	"grocery/internal/core/ports"
)

// ConfirmDeliveryCommandHandler handles a rider's delivery confirmation.
//
// The operation is idempotent end to end: verifying the order is a domain
// no-op on repeat calls, so the commission payment is created at most once.
// The unique constraint on the payment's order number backs this up at the
// storage level.
type ConfirmDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	selector   services.RiderSelector
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmations.
func NewConfirmDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	selector services.RiderSelector,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		selector:   selector,
		publisher:  publisher,
		logger:     logger.With("component", "confirm_delivery"),
	}
}

// Handle verifies the delivery, credits the selected rider with a pending
// commission of payment.CommissionPercent of the order total, and publishes
// the payment event. A repeat confirmation changes nothing and returns nil.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if aggregate.IsDeliveryVerified() {
		h.logger.InfoContext(ctx, "delivery already verified, skipping",
			"orderNumber", aggregate.Number().String())
		return nil
	}

	riders, err := uow.RiderRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	selected, err := h.selector.Select(riders)
	if err != nil {
		return err
	}

	confirmed, err := aggregate.ConfirmDelivery(selected.ID())
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	commission, err := payment.NewCommission(
		selected.ID(), aggregate.Number(), aggregate.Total(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, commission); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishRiderPaymentCreated(ctx, commission); err != nil {
		h.logger.WarnContext(ctx, "failed to publish rider payment event",
			"orderNumber", aggregate.Number().String(), "error", err)
	}

	return nil
}
