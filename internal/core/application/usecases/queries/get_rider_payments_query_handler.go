package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// GetRiderPaymentsQueryHandler retrieves commission payments joined with the
// rider directory for display names.
type GetRiderPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderPaymentsQueryHandler creates a handler for the payments overview.
func NewGetRiderPaymentsQueryHandler(db *gorm.DB) GetRiderPaymentsQueryHandler {
	return GetRiderPaymentsQueryHandler{db: db}
}

// Handle executes the payments read, newest first.
func (h GetRiderPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetRiderPaymentsQuery,
) ([]GetRiderPaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payments := make([]GetRiderPaymentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			r.name,
			p.order_number,
			p.amount,
			p.status,
			p.date
		FROM rider_payments p
		JOIN riders r ON r.id = p.rider_id
		ORDER BY p.date DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRiderPaymentsQueryResponse
		var orderNumber int

		if err = rows.Scan(&resp.ID, &resp.RiderName, &orderNumber, &resp.AmountCents, &resp.Status, &resp.Date); err != nil {
			return nil, err
		}

		resp.OrderNumber = fmt.Sprintf("%06d", orderNumber)
		payments = append(payments, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
