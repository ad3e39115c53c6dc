package queries

import (
	"errors"
	"time"

	"grocery/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order that has not yet been delivered.
// Used by the orders overview to show in-flight deliveries.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for undelivered orders.
// This is a parameterless query.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is one in-flight order in the overview.
type GetActiveOrdersQueryResponse struct {
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	VendorName  string    `json:"vendorName"`
	TotalCents  int64     `json:"totalCents"`
	CreatedAt   time.Time `json:"createdAt"`
}
