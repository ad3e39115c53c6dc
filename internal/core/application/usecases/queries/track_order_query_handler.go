package queries

import (
	"context"
	"database/sql"

	"grocery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler reads the tracking view of an order from the database.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order tracking reads.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the tracking read.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	var row struct {
		Status               string
		VendorName           string
		QuoteAddress         string
		QuoteMinutes         int
		QuoteCost            int64
		Subtotal             int64
		Total                int64
		CreatedAt            sql.NullTime
		DeliveredAt          sql.NullTime
		AwaitingVerification bool
		DeliveryVerified     bool
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			vendor_name,
			quote_address,
			quote_minutes,
			quote_cost,
			subtotal,
			total,
			created_at,
			delivered_at,
			awaiting_verification,
			delivery_verified
		FROM orders
		WHERE number = ?
	`, query.OrderNumber().Value()).Scan(&row)
	if result.Error != nil {
		return TrackOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return TrackOrderQueryResponse{}, notFound("orderNumber", query.OrderNumber().String())
	}

	status, err := order.StatusFromString(row.Status)
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	response := TrackOrderQueryResponse{
		OrderNumber:          query.OrderNumber().String(),
		Status:               status.String(),
		StageIndex:           status.StageIndex(),
		VendorName:           row.VendorName,
		DeliveryAddress:      row.QuoteAddress,
		EstimatedMinutes:     row.QuoteMinutes,
		SubtotalCents:        row.Subtotal,
		DeliveryCostCents:    row.QuoteCost,
		TotalCents:           row.Total,
		CreatedAt:            row.CreatedAt.Time,
		AwaitingVerification: row.AwaitingVerification,
		DeliveryVerified:     row.DeliveryVerified,
		Lines:                make([]OrderLineResponse, 0),
	}
	if row.DeliveredAt.Valid {
		deliveredAt := row.DeliveredAt.Time
		response.DeliveredAt = &deliveredAt
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			unit_price,
			quantity
		FROM order_lines
		WHERE order_number = ?
		ORDER BY position
	`, query.OrderNumber().Value()).Rows()
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		if err = rows.Scan(&line.ProductID, &line.Name, &line.UnitPriceCents, &line.Quantity); err != nil {
			return TrackOrderQueryResponse{}, err
		}
		response.Lines = append(response.Lines, line)
	}
	if err = rows.Err(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	return response, nil
}
