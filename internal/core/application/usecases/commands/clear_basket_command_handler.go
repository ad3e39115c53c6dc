package commands

import (
	"context"
)

// ClearBasketCommandHandler handles emptying a basket.
type ClearBasketCommandHandler struct {
	uowFactory BasketUoWFactory
}

// NewClearBasketCommandHandler creates a handler for basket clears.
func NewClearBasketCommandHandler(uowFactory BasketUoWFactory) ClearBasketCommandHandler {
	return ClearBasketCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear command.
func (h *ClearBasketCommandHandler) Handle(ctx context.Context, cmd ClearBasketCommand) error {
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

	basketRepo := uow.BasketRepository()
	aggregate, err := basketRepo.Get(ctx, cmd.BasketID())
	if err != nil {
		return err
	}

	if err = aggregate.Clear(); err != nil {
		return err
	}

	if err = basketRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
