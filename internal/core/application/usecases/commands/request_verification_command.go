package commands

import (
	"errors"

	"grocery/internal/pkg/guard"
)

var ErrRequestVerificationCommandIsNotConstructed = errors.New(
	"RequestVerificationCommand must be created via NewRequestVerificationCommand constructor",
)

// RequestVerificationCommand marks freshly delivered orders as awaiting
// verification, which prompts the customer to hand the order number to the
// rider. The prompt fires once per order, shortly after delivery.
type RequestVerificationCommand struct {
	guard guard.ConstructorGuard
}

// NewRequestVerificationCommand creates a command to prompt delivered orders.
// This is a parameterless command that processes every eligible order.
func NewRequestVerificationCommand() RequestVerificationCommand {
	return RequestVerificationCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RequestVerificationCommand) Validate() error {
	return c.guard.Validate(ErrRequestVerificationCommandIsNotConstructed)
}
