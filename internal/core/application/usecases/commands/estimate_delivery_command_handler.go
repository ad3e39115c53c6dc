package commands

import (
	"context"

	"grocery/internal/core/domain/model/basket"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/services"
)

// EstimateDeliveryCommandHandler handles the delivery estimate step of checkout.
// It prices the delivery from the basket's supermarket to the customer's
// address and attaches the quote to the basket for the payment step.
type EstimateDeliveryCommandHandler struct {
	uowFactory BasketUoWFactory
	calculator services.QuoteCalculator
}

// NewEstimateDeliveryCommandHandler creates a handler for delivery estimates.
func NewEstimateDeliveryCommandHandler(
	uowFactory BasketUoWFactory,
	calculator services.QuoteCalculator,
) EstimateDeliveryCommandHandler {
	return EstimateDeliveryCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes the estimate command and returns the quote.
// An empty basket cannot be priced; re-estimating replaces the previous quote.
func (h *EstimateDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd EstimateDeliveryCommand,
) (kernel.DeliveryQuote, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.DeliveryQuote{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.DeliveryQuote{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	basketRepo := uow.BasketRepository()
	aggregate, err := basketRepo.Get(ctx, cmd.BasketID())
	if err != nil {
		return kernel.DeliveryQuote{}, err
	}

	if aggregate.IsEmpty() {
		return kernel.DeliveryQuote{}, basket.ErrBasketIsEmpty
	}

	quote, err := h.calculator.Calculate(ctx, aggregate.Vendor().Address(), cmd.Address())
	if err != nil {
		return kernel.DeliveryQuote{}, err
	}

	if err = aggregate.AttachQuote(quote); err != nil {
		return kernel.DeliveryQuote{}, err
	}

	if err = basketRepo.Save(ctx, aggregate); err != nil {
		return kernel.DeliveryQuote{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.DeliveryQuote{}, err
	}

	return quote, nil
}
