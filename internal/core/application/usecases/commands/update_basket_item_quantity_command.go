package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrUpdateBasketItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateBasketItemQuantityCommand must be created via NewUpdateBasketItemQuantityCommand constructor",
)

// UpdateBasketItemQuantityCommand represents a request to set the quantity of a
// basket line. A quantity of zero or below removes the line.
type UpdateBasketItemQuantityCommand struct { //nolint:recvcheck //using for validation
	basketID  kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewUpdateBasketItemQuantityCommand creates a quantity update command.
// Any quantity is accepted; non-positive values remove the line.
func NewUpdateBasketItemQuantityCommand(
	basketID kernel.UUID,
	productID kernel.UUID,
	quantity int,
) (UpdateBasketItemQuantityCommand, error) {
	command := UpdateBasketItemQuantityCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBasketID(basketID),
		command.setProductID(productID),
	); err != nil {
		return UpdateBasketItemQuantityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBasketItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBasketItemQuantityCommandIsNotConstructed)
}

// BasketID returns the shopping session identifier.
func (c UpdateBasketItemQuantityCommand) BasketID() kernel.UUID {
	return c.basketID
}

// ProductID returns the product whose line is updated.
func (c UpdateBasketItemQuantityCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the requested quantity.
func (c UpdateBasketItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateBasketItemQuantityCommand) setBasketID(basketID kernel.UUID) error {
	if err := basketID.Validate(); err != nil {
		return err
	}

	c.basketID = basketID
	return nil
}

func (c *UpdateBasketItemQuantityCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
