package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"grocery/internal/core/domain/model/basket"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
)

// ErrQuoteIsMissing is returned when an order is placed before the delivery
// estimate step produced a quote for the basket's current contents.
var ErrQuoteIsMissing = errors.New("basket has no delivery quote")

// PlaceOrderCommandHandler converts a basket into an order.
//
// The basket is cleared in the same transaction that creates the order, so a
// duplicate submission of the same checkout finds an empty basket and fails
// instead of placing a second order.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "place_order"),
	}
}

// Handle processes the payment command and returns the new order number.
//
// The order freezes the basket lines, the vendor snapshot, and the attached
// quote; totals are computed server side from those frozen values.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.OrderNumber, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderNumber{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.OrderNumber{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	basketRepo := uow.BasketRepository()
	aggregate, err := basketRepo.Get(ctx, cmd.BasketID())
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	if aggregate.IsEmpty() {
		return kernel.OrderNumber{}, basket.ErrBasketIsEmpty
	}
	if aggregate.Quote() == nil {
		return kernel.OrderNumber{}, ErrQuoteIsMissing
	}

	newOrder, err := h.buildOrder(aggregate)
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.OrderNumber{}, err
	}

	if err = aggregate.Clear(); err != nil {
		return kernel.OrderNumber{}, err
	}
	if err = basketRepo.Save(ctx, aggregate); err != nil {
		return kernel.OrderNumber{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderNumber{}, err
	}

	if err = h.publisher.PublishBasketConfirmed(ctx, newOrder); err != nil {
		h.logger.WarnContext(ctx, "failed to publish basket confirmed event",
			"orderNumber", newOrder.Number().String(), "error", err)
	}

	return newOrder.Number(), nil
}

func (h *PlaceOrderCommandHandler) buildOrder(aggregate *basket.Basket) (*order.Order, error) {
	vendorRef, err := order.NewVendorRef(
		aggregate.Vendor().ID(), aggregate.Vendor().Name(), aggregate.Vendor().Address())
	if err != nil {
		return nil, err
	}

	basketLines := aggregate.Lines()
	lines := make([]order.Line, 0, len(basketLines))
	for _, basketLine := range basketLines {
		line, err := order.NewLine(
			basketLine.ProductID(), basketLine.Name(), basketLine.UnitPrice(), basketLine.Quantity())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.NewOrder(
		kernel.NewRandomOrderNumber(), vendorRef, lines, *aggregate.Quote(), time.Now())
}
