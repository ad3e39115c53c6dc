package commands

import (
	"errors"
	"strings"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrEstimateDeliveryCommandIsNotConstructed = errors.New(
	"EstimateDeliveryCommand must be created via NewEstimateDeliveryCommand constructor",
)

// EstimateDeliveryCommand represents the first checkout step: pricing the
// delivery of the basket to the customer's address. The resulting quote is
// attached to the basket and reused at payment, so the customer pays exactly
// the price they were shown.
type EstimateDeliveryCommand struct { //nolint:recvcheck //using for validation
	basketID kernel.UUID
	address  string

	guard guard.ConstructorGuard
}

// NewEstimateDeliveryCommand creates a delivery estimate command.
// The delivery address must be non-blank.
func NewEstimateDeliveryCommand(basketID kernel.UUID, address string) (EstimateDeliveryCommand, error) {
	command := EstimateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBasketID(basketID),
		command.setAddress(address),
	); err != nil {
		return EstimateDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c EstimateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrEstimateDeliveryCommandIsNotConstructed)
}

// BasketID returns the shopping session identifier.
func (c EstimateDeliveryCommand) BasketID() kernel.UUID {
	return c.basketID
}

// Address returns the delivery address to price against.
func (c EstimateDeliveryCommand) Address() string {
	return c.address
}

func (c *EstimateDeliveryCommand) setBasketID(basketID kernel.UUID) error {
	if err := basketID.Validate(); err != nil {
		return err
	}

	c.basketID = basketID
	return nil
}

func (c *EstimateDeliveryCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}
