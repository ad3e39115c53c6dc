package payment

import (
	"errors"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/kernel"
)

// CommissionPercent is the rider's cut of the order total.
const CommissionPercent = 10

var (
	// ErrRiderPaymentIsNotConstructed is returned when a RiderPayment was not
	// created through NewCommission or RestoreRiderPayment.
	ErrRiderPaymentIsNotConstructed = errors.New(
		"RiderPayment must be created via NewCommission constructor")

	// ErrPaymentAlreadyApproved is returned by Approve on an approved payment.
	ErrPaymentAlreadyApproved = errors.New("payment is already approved")
)

// RiderPayment is the commission owed to a rider for a verified delivery.
// Exactly one payment exists per order; the order number carries a unique
// constraint in the payment store to back the domain guarantee.
type RiderPayment struct {
	id          kernel.UUID
	riderID     kernel.UUID
	orderNumber kernel.OrderNumber
	amount      kernel.Money
	status      Status
	date        time.Time

	guard kernel.ConstructorGuard
}

// NewCommission creates the pending commission payment for a verified delivery.
// The amount is CommissionPercent of the order total, rounded half up.
func NewCommission(
	riderID kernel.UUID,
	orderNumber kernel.OrderNumber,
	orderTotal kernel.Money,
	now time.Time,
) (*RiderPayment, error) {
	if err := errors.Join(
		riderID.Validate(),
		orderNumber.Validate(),
		orderTotal.Validate(),
	); err != nil {
		return nil, err
	}

	return &RiderPayment{
		id:          kernel.NewUUID(),
		riderID:     riderID,
		orderNumber: orderNumber,
		amount:      orderTotal.Percent(CommissionPercent),
		status:      StatusPending,
		date:        now,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// RestoreRiderPayment reconstructs a payment from persistence.
func RestoreRiderPayment(
	id kernel.UUID,
	riderID kernel.UUID,
	orderNumber kernel.OrderNumber,
	amount kernel.Money,
	status Status,
	date time.Time,
) (*RiderPayment, error) {
	if err := errors.Join(
		id.Validate(),
		riderID.Validate(),
		orderNumber.Validate(),
		amount.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &RiderPayment{
		id:          id,
		riderID:     riderID,
		orderNumber: orderNumber,
		amount:      amount,
		status:      status,
		date:        date,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the payment was created through a constructor.
func (p *RiderPayment) Validate() error {
	if p == nil {
		return ErrRiderPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrRiderPaymentIsNotConstructed)
}

// ID returns the payment identifier.
func (p *RiderPayment) ID() kernel.UUID {
	return p.id
}

// RiderID returns the rider the commission is owed to.
func (p *RiderPayment) RiderID() kernel.UUID {
	return p.riderID
}

// OrderNumber returns the order the commission was earned on.
func (p *RiderPayment) OrderNumber() kernel.OrderNumber {
	return p.orderNumber
}

// Amount returns the commission amount.
func (p *RiderPayment) Amount() kernel.Money {
	return p.amount
}

// Status returns the settlement status.
func (p *RiderPayment) Status() Status {
	return p.status
}

// Date returns when the commission was created.
func (p *RiderPayment) Date() time.Time {
	return p.date
}

// IsEqual compares payments by identifier.
func (p *RiderPayment) IsEqual(other *RiderPayment) bool {
	return p.id.IsEqual(other.id)
}

// Approve releases the payment to the rider.
// Approving an already approved payment is an error.
func (p *RiderPayment) Approve() error {
	if err := p.Validate(); err != nil {
		return err
	}

	if p.status == StatusApproved {
		return fmt.Errorf("payment %s for order %s: %w",
			p.id, p.orderNumber, ErrPaymentAlreadyApproved)
	}

	p.status = StatusApproved
	return nil
}
