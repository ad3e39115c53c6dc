package queries

import (
	"errors"

	"grocery/internal/pkg/guard"
)

var ErrGetVendorsQueryIsNotConstructed = errors.New(
	"GetVendorsQuery must be created via NewGetVendorsQuery constructor",
)

// GetVendorsQuery retrieves the supermarket directory for the storefront.
type GetVendorsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetVendorsQuery creates a query for the supermarket directory.
// This is a parameterless query.
func NewGetVendorsQuery() GetVendorsQuery {
	return GetVendorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetVendorsQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorsQueryIsNotConstructed)
}

// GetVendorsQueryResponse is one supermarket on the storefront.
type GetVendorsQueryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Image        string `json:"image,omitempty"`
	DeliveryTime string `json:"deliveryTime,omitempty"`
}
