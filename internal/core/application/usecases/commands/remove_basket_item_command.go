package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrRemoveBasketItemCommandIsNotConstructed = errors.New(
	"RemoveBasketItemCommand must be created via NewRemoveBasketItemCommand constructor",
)

// RemoveBasketItemCommand represents a request to remove a product from a basket.
type RemoveBasketItemCommand struct { //nolint:recvcheck //using for validation
	basketID  kernel.UUID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveBasketItemCommand creates a removal command.
func NewRemoveBasketItemCommand(basketID kernel.UUID, productID kernel.UUID) (RemoveBasketItemCommand, error) {
	command := RemoveBasketItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBasketID(basketID),
		command.setProductID(productID),
	); err != nil {
		return RemoveBasketItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveBasketItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveBasketItemCommandIsNotConstructed)
}

// BasketID returns the shopping session identifier.
func (c RemoveBasketItemCommand) BasketID() kernel.UUID {
	return c.basketID
}

// ProductID returns the product to remove.
func (c RemoveBasketItemCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *RemoveBasketItemCommand) setBasketID(basketID kernel.UUID) error {
	if err := basketID.Validate(); err != nil {
		return err
	}

	c.basketID = basketID
	return nil
}

func (c *RemoveBasketItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
