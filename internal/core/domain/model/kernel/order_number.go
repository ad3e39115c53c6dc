package kernel

import (
	"fmt"
	"math/rand/v2"

	"grocery/internal/pkg/errs"
)

const (
	// OrderNumberMin is the smallest valid customer-facing order number.
	OrderNumberMin = 100000
	// OrderNumberMax is the largest valid customer-facing order number.
	OrderNumberMax = 999999
)

// ErrOrderNumberIsNotConstructed is returned when validating a zero-value OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNumber or NewRandomOrderNumber")

// OrderNumber is the customer-facing six-digit identifier assigned to an order
// at checkout. It is a value object: immutable, always in [OrderNumberMin,
// OrderNumberMax], and only constructible through the provided factories.
//
// Six digits keep the number easy to read out over the phone to a rider or
// support agent; uniqueness is enforced by the order store, not by this type.
type OrderNumber struct {
	value int
	guard ConstructorGuard
}

// NewOrderNumber creates an OrderNumber from an integer, validating the six-digit range.
// Used when parsing tracking requests and when restoring orders from persistence.
func NewOrderNumber(value int) (OrderNumber, error) {
	if value < OrderNumberMin || value > OrderNumberMax {
		return OrderNumber{}, errs.NewValueIsOutOfRangeError(
			"orderNumber", value, OrderNumberMin, OrderNumberMax)
	}

	return OrderNumber{
		value: value,
		guard: NewConstructorGuard(),
	}, nil
}

// NewRandomOrderNumber generates a random order number uniformly in the valid range.
// Collisions are possible and are rejected by the unique constraint on the order
// store; checkout retries with a fresh number in that case.
func NewRandomOrderNumber() OrderNumber {
	value := OrderNumberMin + rand.IntN(OrderNumberMax-OrderNumberMin+1) //nolint:gosec // not a secret
	number, _ := NewOrderNumber(value)
	return number
}

// Validate checks that the OrderNumber was created through a constructor.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}

// Value returns the numeric order number.
func (n OrderNumber) Value() int {
	return n.value
}

// IsEqual reports whether two order numbers are the same.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// String returns the order number as printed on receipts, e.g. "482913".
func (n OrderNumber) String() string {
	return fmt.Sprintf("%06d", n.value)
}
