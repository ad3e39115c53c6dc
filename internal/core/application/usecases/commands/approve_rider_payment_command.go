package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrApproveRiderPaymentCommandIsNotConstructed = errors.New(
	"ApproveRiderPaymentCommand must be created via NewApproveRiderPaymentCommand constructor",
)

// ApproveRiderPaymentCommand represents a request to release a pending
// commission payment to its rider.
type ApproveRiderPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveRiderPaymentCommand creates a payment approval command.
func NewApproveRiderPaymentCommand(paymentID kernel.UUID) (ApproveRiderPaymentCommand, error) {
	command := ApproveRiderPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPaymentID(paymentID); err != nil {
		return ApproveRiderPaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveRiderPaymentCommand) Validate() error {
	return c.guard.Validate(ErrApproveRiderPaymentCommandIsNotConstructed)
}

// PaymentID returns the payment to approve.
func (c ApproveRiderPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c *ApproveRiderPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}
