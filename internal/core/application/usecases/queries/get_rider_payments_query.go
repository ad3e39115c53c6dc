package queries

import (
	"errors"
	"time"

	"grocery/internal/pkg/guard"
)

var ErrGetRiderPaymentsQueryIsNotConstructed = errors.New(
	"GetRiderPaymentsQuery must be created via NewGetRiderPaymentsQuery constructor",
)

// GetRiderPaymentsQuery retrieves every rider commission payment for the
// earnings overview, newest first.
type GetRiderPaymentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRiderPaymentsQuery creates a query for the payments overview.
// This is a parameterless query.
func NewGetRiderPaymentsQuery() GetRiderPaymentsQuery {
	return GetRiderPaymentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRiderPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderPaymentsQueryIsNotConstructed)
}

// GetRiderPaymentsQueryResponse is one commission payment in the overview.
type GetRiderPaymentsQueryResponse struct {
	ID          string    `json:"id"`
	RiderName   string    `json:"riderName"`
	OrderNumber string    `json:"orderNumber"`
	AmountCents int64     `json:"amountCents"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}
