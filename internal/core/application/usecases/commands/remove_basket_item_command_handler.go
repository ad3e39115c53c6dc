package commands

import (
	"context"
)

// RemoveBasketItemCommandHandler handles line removal from baskets.
type RemoveBasketItemCommandHandler struct {
	uowFactory BasketUoWFactory
}

// NewRemoveBasketItemCommandHandler creates a handler for basket removals.
func NewRemoveBasketItemCommandHandler(uowFactory BasketUoWFactory) RemoveBasketItemCommandHandler {
	return RemoveBasketItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
// Removing the last line clears the basket's vendor.
func (h *RemoveBasketItemCommandHandler) Handle(ctx context.Context, cmd RemoveBasketItemCommand) error {
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

	if err = aggregate.RemoveLine(cmd.ProductID()); err != nil {
		return err
	}

	if err = basketRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
