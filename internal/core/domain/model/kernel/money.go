package kernel

import (
	"fmt"

	"grocery/internal/pkg/errs"
)

// Money represents a monetary amount in integer cents. Keeping amounts in cents
// makes basket subtotals, delivery costs, and commission calculations exact;
// no floating point is involved anywhere money is added or compared.
//
// The zero value is a valid $0.00 amount, which keeps summation natural:
//
//	var subtotal kernel.Money
//	for _, line := range lines {
//	    subtotal = subtotal.Add(line.Total())
//	}
type Money int64

// MoneyFromCents creates a Money amount from an integer number of cents.
// Negative amounts are rejected; the marketplace has no notion of negative money.
func MoneyFromCents(cents int64) (Money, error) {
	m := Money(cents)
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return m, nil
}

// Validate rejects negative amounts.
func (m Money) Validate() error {
	if m < 0 {
		return errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", int64(m)))
	}
	return nil
}

// Cents returns the amount as integer cents.
func (m Money) Cents() int64 {
	return int64(m)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// MultiplyBy returns the amount multiplied by a non-negative quantity.
func (m Money) MultiplyBy(quantity int) Money {
	return m * Money(quantity)
}

// Percent returns the given percentage of the amount, rounded half up to the
// nearest cent. Used for the rider commission (10% of the order total).
func (m Money) Percent(percent int) Money {
	return (m*Money(percent) + 50) / 100
}

// IsZero reports whether the amount is exactly $0.00.
func (m Money) IsZero() bool {
	return m == 0
}

// String formats the amount as dollars, e.g. "$18.96".
// Implements fmt.Stringer for logging and display.
func (m Money) String() string {
	return fmt.Sprintf("$%d.%02d", int64(m)/100, int64(m)%100)
}
