package queries

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrGetVendorProductsQueryIsNotConstructed = errors.New(
	"GetVendorProductsQuery must be created via NewGetVendorProductsQuery constructor",
)

// GetVendorProductsQuery retrieves a supermarket's product catalog.
type GetVendorProductsQuery struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorProductsQuery creates a catalog query for the given supermarket.
func NewGetVendorProductsQuery(vendorID kernel.UUID) (GetVendorProductsQuery, error) {
	query := GetVendorProductsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setVendorID(vendorID); err != nil {
		return GetVendorProductsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorProductsQueryIsNotConstructed)
}

// VendorID returns the supermarket whose catalog is requested.
func (q GetVendorProductsQuery) VendorID() kernel.UUID {
	return q.vendorID
}

func (q *GetVendorProductsQuery) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	q.vendorID = vendorID
	return nil
}

// GetVendorProductsQueryResponse is one catalog item on the storefront.
type GetVendorProductsQueryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Unit       string `json:"unit,omitempty"`
	Category   string `json:"category,omitempty"`
	Image      string `json:"image,omitempty"`
}
