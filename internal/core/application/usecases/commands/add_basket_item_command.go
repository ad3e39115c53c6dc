package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var (
	ErrAddBasketItemCommandIsNotConstructed = errors.New(
		"AddBasketItemCommand must be created via NewAddBasketItemCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddBasketItemCommand represents a request to add a product to a shopping basket.
//
// When the basket already holds items from another supermarket the add is
// rejected with basket.ErrVendorConflict unless replaceOnConflict is set, in
// which case the basket is discarded and restarted with the new item. The UI
// sets the flag only after the customer confirms the switch.
type AddBasketItemCommand struct { //nolint:recvcheck //using for validation
	basketID          kernel.UUID
	productID         kernel.UUID
	quantity          int
	replaceOnConflict bool

	guard guard.ConstructorGuard
}

// NewAddBasketItemCommand creates a command to add a product to a basket.
// Validates that both identifiers are valid and the quantity is positive.
func NewAddBasketItemCommand(
	basketID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	replaceOnConflict bool,
) (AddBasketItemCommand, error) {
	command := AddBasketItemCommand{
		replaceOnConflict: replaceOnConflict,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBasketID(basketID),
		command.setProductID(productID),
		command.setQuantity(quantity),
	); err != nil {
		return AddBasketItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddBasketItemCommand) Validate() error {
	return c.guard.Validate(ErrAddBasketItemCommandIsNotConstructed)
}

// BasketID returns the shopping session identifier.
func (c AddBasketItemCommand) BasketID() kernel.UUID {
	return c.basketID
}

// ProductID returns the catalog product to add.
func (c AddBasketItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units to add.
func (c AddBasketItemCommand) Quantity() int {
	return c.quantity
}

// ReplaceOnConflict reports whether a vendor conflict should discard the
// basket and restart it with the new item.
func (c AddBasketItemCommand) ReplaceOnConflict() bool {
	return c.replaceOnConflict
}

func (c *AddBasketItemCommand) setBasketID(basketID kernel.UUID) error {
	if err := basketID.Validate(); err != nil {
		return err
	}

	c.basketID = basketID
	return nil
}

func (c *AddBasketItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddBasketItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
