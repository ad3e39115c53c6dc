package product

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product was not created via NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog item sold by a single supermarket. The catalog is
// seeded at startup; basket lines capture the product's price at add time.
type Product struct {
	id       kernel.UUID
	name     string
	price    kernel.Money
	unit     string
	category string
	vendorID kernel.UUID
	image    string

	guard kernel.ConstructorGuard
}

// NewProduct creates a catalog item. Unit is the pack description shown under
// the name, e.g. "1L" or "per kg"; category groups products on the storefront.
func NewProduct(
	id kernel.UUID,
	name string,
	price kernel.Money,
	unit string,
	category string,
	vendorID kernel.UUID,
	image string,
) (*Product, error) {
	if err := errors.Join(
		id.Validate(),
		price.Validate(),
		vendorID.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Product{
		id:       id,
		name:     name,
		price:    price,
		unit:     unit,
		category: category,
		vendorID: vendorID,
		image:    image,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the product was created through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current catalog price per unit.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Unit returns the pack description, e.g. "1L".
func (p *Product) Unit() string {
	return p.unit
}

// Category returns the storefront category, e.g. "Dairy".
func (p *Product) Category() string {
	return p.category
}

// VendorID returns the supermarket selling the product.
func (p *Product) VendorID() kernel.UUID {
	return p.vendorID
}

// Image returns the product image URL.
func (p *Product) Image() string {
	return p.image
}
