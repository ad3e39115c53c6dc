package commands

import (
	"context"
	"log/slog"
	"time"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
)

// AdvanceOrdersCommandHandler moves every undelivered order one lifecycle
// stage forward. Orders advance independently; a delivered order is skipped.
type AdvanceOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewAdvanceOrdersCommandHandler creates a handler for lifecycle progression.
func NewAdvanceOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AdvanceOrdersCommandHandler {
	return AdvanceOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "advance_orders"),
	}
}

// Handle advances all undelivered orders by exactly one stage and publishes a
// status change event for each after the transaction commits.
func (h *AdvanceOrdersCommandHandler) Handle(ctx context.Context, cmd AdvanceOrdersCommand) error {
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
	orders, err := orderRepo.GetAllUndelivered(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	advanced := make([]*order.Order, 0, len(orders))
	for _, aggregate := range orders {
		moved, err := aggregate.Advance(now)
		if err != nil {
			return err
		}
		if !moved {
			continue
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
		advanced = append(advanced, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range advanced {
		if err = h.publisher.PublishOrderStatusChanged(ctx, aggregate); err != nil {
			h.logger.WarnContext(ctx, "failed to publish order status change",
				"orderNumber", aggregate.Number().String(), "error", err)
		}
	}

	return nil
}
