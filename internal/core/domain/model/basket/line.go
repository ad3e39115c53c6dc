package basket

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line was not created via NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is a single basket line item: a product, its unit price at the time it was
// added, and the quantity wanted. Line is an immutable value object; quantity
// changes produce a new Line via WithQuantity.
type Line struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int
	vendorID  kernel.UUID

	guard kernel.ConstructorGuard
}

// NewLine creates a basket line for the given product.
// Quantity must be at least 1; name must be non-empty.
func NewLine(
	productID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	vendorID kernel.UUID,
) (Line, error) {
	line := Line{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setName(name),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
		line.setVendorID(vendorID),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the product identifier.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Name returns the product name as displayed to the customer.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the price per unit captured when the line was created.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the number of units.
func (l Line) Quantity() int {
	return l.quantity
}

// VendorID returns the supermarket the product belongs to.
func (l Line) VendorID() kernel.UUID {
	return l.vendorID
}

// Total returns unit price × quantity.
func (l Line) Total() kernel.Money {
	return l.unitPrice.MultiplyBy(l.quantity)
}

// WithQuantity returns a copy of the line with the given quantity.
func (l Line) WithQuantity(quantity int) (Line, error) {
	return NewLine(l.productID, l.name, l.unitPrice, quantity, l.vendorID)
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	l.vendorID = vendorID
	return nil
}
