package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents a rider confirming a delivery with the
// order number the customer handed over. Confirmation verifies the delivery
// and creates the rider's commission payment.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a delivery confirmation command.
func NewConfirmDeliveryCommand(orderNumber kernel.OrderNumber) (ConfirmDeliveryCommand, error) {
	command := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderNumber(orderNumber); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// OrderNumber returns the order number being confirmed.
func (c ConfirmDeliveryCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

func (c *ConfirmDeliveryCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}
