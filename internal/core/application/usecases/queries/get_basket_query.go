// Package queries contains read-only operations for the grocery marketplace.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structs, bypassing the domain
// aggregates that the command side maintains.
package queries

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrGetBasketQueryIsNotConstructed = errors.New(
	"GetBasketQuery must be created via NewGetBasketQuery constructor",
)

// GetBasketQuery retrieves the current contents of a shopping basket.
type GetBasketQuery struct { //nolint:recvcheck //using for validation
	basketID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBasketQuery creates a query for the given shopping session.
func NewGetBasketQuery(basketID kernel.UUID) (GetBasketQuery, error) {
	query := GetBasketQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setBasketID(basketID); err != nil {
		return GetBasketQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBasketQuery) Validate() error {
	return q.guard.Validate(ErrGetBasketQueryIsNotConstructed)
}

// BasketID returns the shopping session identifier.
func (q GetBasketQuery) BasketID() kernel.UUID {
	return q.basketID
}

func (q *GetBasketQuery) setBasketID(basketID kernel.UUID) error {
	if err := basketID.Validate(); err != nil {
		return err
	}

	q.basketID = basketID
	return nil
}

// GetBasketQueryResponse is the basket as rendered on the storefront.
type GetBasketQueryResponse struct {
	BasketID      string                  `json:"basketId"`
	Vendor        *BasketVendorResponse   `json:"vendor,omitempty"`
	Lines         []BasketLineResponse    `json:"lines"`
	SubtotalCents int64                   `json:"subtotalCents"`
	Quote         *DeliveryQuoteResponse  `json:"quote,omitempty"`
}

// BasketVendorResponse is the supermarket header shown above the basket.
type BasketVendorResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Image   string `json:"image,omitempty"`
}

// BasketLineResponse is a single basket line.
type BasketLineResponse struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	TotalCents     int64  `json:"totalCents"`
}

// DeliveryQuoteResponse is the delivery estimate attached during checkout.
type DeliveryQuoteResponse struct {
	Address          string  `json:"address"`
	DistanceKm       float64 `json:"distanceKm"`
	CostCents        int64   `json:"costCents"`
	EstimatedMinutes int     `json:"estimatedMinutes"`
}
