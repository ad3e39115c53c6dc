package queries

import (
	"context"
	"database/sql"

	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetBasketQueryHandler reads a basket straight from the database.
// A session without a stored basket is reported as an empty basket rather
// than an error, since every visitor implicitly has one.
type GetBasketQueryHandler struct {
	db *gorm.DB
}

// NewGetBasketQueryHandler creates a handler for basket reads.
func NewGetBasketQueryHandler(db *gorm.DB) GetBasketQueryHandler {
	return GetBasketQueryHandler{db: db}
}

// Handle executes the basket read.
func (h GetBasketQueryHandler) Handle(
	ctx context.Context,
	query GetBasketQuery,
) (GetBasketQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBasketQueryResponse{}, err
	}

	response := GetBasketQueryResponse{
		BasketID: query.BasketID().String(),
		Lines:    make([]BasketLineResponse, 0),
	}

	var header struct {
		VendorID        sql.NullString
		VendorName      sql.NullString
		VendorAddress   sql.NullString
		VendorImage     sql.NullString
		QuoteAddress    sql.NullString
		QuoteDistanceKm sql.NullFloat64
		QuoteCost       sql.NullInt64
		QuoteMinutes    sql.NullInt32
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			vendor_id,
			vendor_name,
			vendor_address,
			vendor_image,
			quote_address,
			quote_distance_km,
			quote_cost,
			quote_minutes
		FROM baskets
		WHERE id = ?
	`, query.BasketID().String()).Scan(&header)
	if result.Error != nil {
		return GetBasketQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return response, nil
	}

	if header.VendorID.Valid {
		response.Vendor = &BasketVendorResponse{
			ID:      header.VendorID.String,
			Name:    header.VendorName.String,
			Address: header.VendorAddress.String,
			Image:   header.VendorImage.String,
		}
	}
	if header.QuoteAddress.Valid {
		response.Quote = &DeliveryQuoteResponse{
			Address:          header.QuoteAddress.String,
			DistanceKm:       header.QuoteDistanceKm.Float64,
			CostCents:        header.QuoteCost.Int64,
			EstimatedMinutes: int(header.QuoteMinutes.Int32),
		}
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			unit_price,
			quantity
		FROM basket_lines
		WHERE basket_id = ?
		ORDER BY position
	`, query.BasketID().String()).Rows()
	if err != nil {
		return GetBasketQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line BasketLineResponse
		if err = rows.Scan(&line.ProductID, &line.Name, &line.UnitPriceCents, &line.Quantity); err != nil {
			return GetBasketQueryResponse{}, err
		}
		line.TotalCents = line.UnitPriceCents * int64(line.Quantity)
		response.SubtotalCents += line.TotalCents
		response.Lines = append(response.Lines, line)
	}
	if err = rows.Err(); err != nil {
		return GetBasketQueryResponse{}, err
	}

	return response, nil
}

// notFound converts a gorm missing-row result into the domain error.
func notFound(param string, id string) error {
	return errs.NewObjectNotFoundError(param, id)
}
