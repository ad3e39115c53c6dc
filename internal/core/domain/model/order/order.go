package order

import (
	"errors"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNotDelivered is returned by delivery verification operations invoked
	// before the order has reached the Delivered status.
	ErrOrderNotDelivered = errors.New("order has not been delivered yet")
)

// Order is the aggregate root for a placed grocery order. It freezes the basket
// contents, the delivery quote, and the totals at placement, then walks the
// status lifecycle one stage at a time until delivery is verified.
//
// The order number is the aggregate identity; customers track and riders
// confirm deliveries by that number alone.
type Order struct {
	// number is the customer-facing identity of the order
	number kernel.OrderNumber

	// vendor is the supermarket snapshot frozen at placement
	vendor VendorRef

	// lines are the purchased items frozen at placement
	lines []Line

	// quote is the delivery estimate the customer accepted
	quote kernel.DeliveryQuote

	// subtotal is the sum of line totals
	subtotal kernel.Money

	// total is subtotal plus delivery cost
	total kernel.Money

	// status is the current lifecycle stage
	status Status

	// createdAt is the placement time
	createdAt time.Time

	// deliveredAt is set when the order reaches Delivered, nil before that
	deliveredAt *time.Time

	// awaitingVerification is set once the customer has been prompted to
	// hand the order number to the rider
	awaitingVerification bool

	// deliveryVerified is set exactly once, when a rider confirms the
	// delivery with the order number
	deliveryVerified bool

	// riderID is the rider who confirmed the delivery, nil until verified
	riderID *kernel.UUID

	// version supports optimistic concurrency in the repository
	version int

	// guard ensures the order was properly constructed
	guard kernel.ConstructorGuard
}

// NewOrder places an order: it freezes the given lines, vendor snapshot and
// delivery quote, computes the totals, and starts the lifecycle at Processing.
func NewOrder(
	number kernel.OrderNumber,
	vendor VendorRef,
	lines []Line,
	quote kernel.DeliveryQuote,
	now time.Time,
) (*Order, error) {
	set := []error{
		number.Validate(),
		vendor.Validate(),
		quote.Validate(),
	}
	if len(lines) == 0 {
		set = append(set, errs.NewValueIsRequiredError("lines"))
	}
	for _, line := range lines {
		set = append(set, line.Validate())
	}
	if err := errors.Join(set...); err != nil {
		return nil, err
	}

	var subtotal kernel.Money
	for _, line := range lines {
		subtotal = subtotal.Add(line.Total())
	}

	return &Order{
		number:    number,
		vendor:    vendor,
		lines:     append(make([]Line, 0, len(lines)), lines...),
		quote:     quote,
		subtotal:  subtotal,
		total:     subtotal.Add(quote.Cost()),
		status:    Processing,
		createdAt: now,
		version:   1,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence, re-checking the
// consistency rules between status, delivery timestamps, and verification.
func RestoreOrder(
	number kernel.OrderNumber,
	vendor VendorRef,
	lines []Line,
	quote kernel.DeliveryQuote,
	status Status,
	createdAt time.Time,
	deliveredAt *time.Time,
	awaitingVerification bool,
	deliveryVerified bool,
	riderID *kernel.UUID,
	version int,
) (*Order, error) {
	set := []error{
		number.Validate(),
		vendor.Validate(),
		quote.Validate(),
		status.Validate(),
	}
	if len(lines) == 0 {
		set = append(set, errs.NewValueIsRequiredError("lines"))
	}
	for _, line := range lines {
		set = append(set, line.Validate())
	}
	if riderID != nil {
		set = append(set, riderID.Validate())
	}
	if err := errors.Join(set...); err != nil {
		return nil, err
	}

	if status != Delivered && (deliveredAt != nil || awaitingVerification || deliveryVerified) {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order cannot carry delivery verification state", status))
	}
	if deliveryVerified && riderID == nil {
		return nil, errs.NewValueIsRequiredError("riderId")
	}
	if !deliveryVerified && riderID != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("riderId",
			fmt.Errorf("rider is set but delivery of order %s is not verified", number))
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("version")
	}

	var subtotal kernel.Money
	for _, line := range lines {
		subtotal = subtotal.Add(line.Total())
	}

	return &Order{
		number:               number,
		vendor:               vendor,
		lines:                append(make([]Line, 0, len(lines)), lines...),
		quote:                quote,
		subtotal:             subtotal,
		total:                subtotal.Add(quote.Cost()),
		status:               status,
		createdAt:            createdAt,
		deliveredAt:          deliveredAt,
		awaitingVerification: awaitingVerification,
		deliveryVerified:     deliveryVerified,
		riderID:              riderID,
		version:              version,
		guard:                kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// Number returns the customer-facing order number.
func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// Vendor returns the supermarket snapshot frozen at placement.
func (o *Order) Vendor() VendorRef {
	return o.vendor
}

// Lines returns a copy of the purchased items.
func (o *Order) Lines() []Line {
	return append(make([]Line, 0, len(o.lines)), o.lines...)
}

// Quote returns the delivery estimate the customer accepted.
func (o *Order) Quote() kernel.DeliveryQuote {
	return o.quote
}

// Subtotal returns the sum of line totals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Total returns subtotal plus delivery cost. This is the amount the rider
// commission is calculated from.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle stage.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns when the order reached Delivered, nil before that.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// IsAwaitingVerification reports whether the customer has been prompted to
// hand the order number to the rider.
func (o *Order) IsAwaitingVerification() bool {
	return o.awaitingVerification
}

// IsDeliveryVerified reports whether a rider has confirmed the delivery.
func (o *Order) IsDeliveryVerified() bool {
	return o.deliveryVerified
}

// RiderID returns the rider who confirmed the delivery, nil until verified.
func (o *Order) RiderID() *kernel.UUID {
	return o.riderID
}

// Version returns the optimistic concurrency version.
func (o *Order) Version() int {
	return o.version
}

// IsEqual compares orders by order number.
func (o *Order) IsEqual(other *Order) bool {
	return o.number.IsEqual(other.number)
}

// Advance moves the order one lifecycle stage forward.
//
// Returns (true, nil) when the order advanced and (false, nil) when the order
// is already Delivered; a delivered order never changes again. Reaching
// Delivered records the delivery time.
func (o *Order) Advance(now time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	if o.status.IsTerminal() {
		return false, nil
	}

	next, err := o.status.Next()
	if err != nil {
		return false, err
	}

	o.status = next
	if o.status == Delivered {
		deliveredAt := now
		o.deliveredAt = &deliveredAt
	}
	return true, nil
}

// MarkAwaitingVerification records that the customer has been prompted to
// hand the order number to the rider.
//
// Returns (true, nil) the first time it is called on a delivered order and
// (false, nil) on repeat calls or after the delivery was verified, so the
// prompt fires at most once. Calling it before delivery is an error.
func (o *Order) MarkAwaitingVerification() (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	if o.status != Delivered {
		return false, ErrOrderNotDelivered
	}

	if o.deliveryVerified || o.awaitingVerification {
		return false, nil
	}

	o.awaitingVerification = true
	return true, nil
}

// ConfirmDelivery records the rider's confirmation of the delivery.
//
// The operation is idempotent: the first call verifies the delivery and
// returns (true, nil); any repeat call is a no-op returning (false, nil) and
// leaves the original rider untouched. Callers create the rider payment only
// on a true result, so a double confirmation can never pay twice.
func (o *Order) ConfirmDelivery(riderID kernel.UUID) (bool, error) {
	if err := errors.Join(o.Validate(), riderID.Validate()); err != nil {
		return false, err
	}

	if o.status != Delivered {
		return false, ErrOrderNotDelivered
	}

	if o.deliveryVerified {
		return false, nil
	}

	o.riderID = &riderID
	o.deliveryVerified = true
	o.awaitingVerification = false
	return true, nil
}
