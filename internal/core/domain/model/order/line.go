package order

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line was not created via NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is an immutable snapshot of a purchased item: the product, the unit
// price the customer agreed to, and the quantity. Unlike a basket line it can
// never change after the order is placed.
type Line struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int

	guard kernel.ConstructorGuard
}

// NewLine creates an order line. Quantity must be at least 1.
func NewLine(productID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (Line, error) {
	line := Line{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setName(name),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
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

// Name returns the product name at purchase time.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the price per unit at purchase time.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the number of units purchased.
func (l Line) Quantity() int {
	return l.quantity
}

// Total returns unit price × quantity.
func (l Line) Total() kernel.Money {
	return l.unitPrice.MultiplyBy(l.quantity)
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
