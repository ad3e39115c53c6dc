package commands

import (
	"context"
)

// UpdateBasketItemQuantityCommandHandler handles quantity changes on basket lines.
type UpdateBasketItemQuantityCommandHandler struct {
	uowFactory BasketUoWFactory
}

// NewUpdateBasketItemQuantityCommandHandler creates a handler for quantity updates.
func NewUpdateBasketItemQuantityCommandHandler(uowFactory BasketUoWFactory) UpdateBasketItemQuantityCommandHandler {
	return UpdateBasketItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity update command.
// Setting the quantity to zero or below removes the line from the basket.
func (h *UpdateBasketItemQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateBasketItemQuantityCommand) error {
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

	if err = aggregate.UpdateQuantity(cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = basketRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
