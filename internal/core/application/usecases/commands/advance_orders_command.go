package commands

import (
	"errors"

	"grocery/internal/pkg/guard"
)

var ErrAdvanceOrdersCommandIsNotConstructed = errors.New(
	"AdvanceOrdersCommand must be created via NewAdvanceOrdersCommand constructor",
)

// AdvanceOrdersCommand triggers one lifecycle step for every undelivered order.
// This batch operation is run on a fixed schedule to simulate the supermarket
// and rider working through the order.
//
// Example:
//
//	cmd := NewAdvanceOrdersCommand()
//	handler := NewAdvanceOrdersCommandHandler(uowFactory, publisher, logger)
//
//	// Run periodically to walk orders through their lifecycle
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Lifecycle update failed: %v", err)
//	}
type AdvanceOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceOrdersCommand creates a command to advance all undelivered orders.
// This is a parameterless command that processes every active order.
func NewAdvanceOrdersCommand() AdvanceOrdersCommand {
	return AdvanceOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AdvanceOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrdersCommandIsNotConstructed)
}
