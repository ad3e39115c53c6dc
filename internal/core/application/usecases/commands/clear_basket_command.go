package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrClearBasketCommandIsNotConstructed = errors.New(
	"ClearBasketCommand must be created via NewClearBasketCommand constructor",
)

// ClearBasketCommand represents a request to empty a shopping basket.
type ClearBasketCommand struct { //nolint:recvcheck //using for validation
	basketID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearBasketCommand creates a basket clear command.
func NewClearBasketCommand(basketID kernel.UUID) (ClearBasketCommand, error) {
	command := ClearBasketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setBasketID(basketID); err != nil {
		return ClearBasketCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearBasketCommand) Validate() error {
	return c.guard.Validate(ErrClearBasketCommandIsNotConstructed)
}

// BasketID returns the shopping session identifier.
func (c ClearBasketCommand) BasketID() kernel.UUID {
	return c.basketID
}

func (c *ClearBasketCommand) setBasketID(basketID kernel.UUID) error {
	if err := basketID.Validate(); err != nil {
		return err
	}

	c.basketID = basketID
	return nil
}
