// Package basketrepo provides data transfer objects and mapping functions for basket persistence.
// This package implements the repository pattern for the basket aggregate, handling
// the conversion between domain entities and database representations.
package basketrepo

import (
	"grocery/internal/core/domain/model/basket"
	"grocery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BasketDTO represents the database structure for persisting basket aggregates.
// Vendor and quote columns are nullable: both are absent on an empty basket,
// and the quote is detached again on any mutation.
type BasketDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID      *uuid.UUID
	VendorName    *string
	VendorAddress *string
	VendorImage   *string

	QuoteAddress    *string
	QuoteDistanceKm *float64
	QuoteCost       *int64
	QuoteMinutes    *int

	Lines []BasketLineDTO `gorm:"foreignKey:BasketID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for basket aggregates.
func (BasketDTO) TableName() string {
	return "baskets"
}

// BasketLineDTO represents one basket line item. Position preserves insertion
// order across reloads.
type BasketLineDTO struct {
	BasketID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	UnitPrice int64     `gorm:"not null"`
	Quantity  int       `gorm:"not null"`
	VendorID  uuid.UUID `gorm:"type:uuid;not null"`
	Position  int       `gorm:"not null"`
}

// TableName specifies the database table name for basket line items.
func (BasketLineDTO) TableName() string {
	return "basket_lines"
}

// fromDomain converts a basket aggregate to its database representation.
func fromDomain(aggregate *basket.Basket) BasketDTO {
	basketID := aggregate.ID().Bytes()

	dto := BasketDTO{ID: basketID}

	if v := aggregate.Vendor(); v != nil {
		vendorID := v.ID().Bytes()
		name := v.Name()
		address := v.Address()
		image := v.Image()

		dto.VendorID = &vendorID
		dto.VendorName = &name
		dto.VendorAddress = &address
		dto.VendorImage = &image
	}

	if q := aggregate.Quote(); q != nil {
		address := q.Address()
		distance := q.DistanceKm()
		cost := q.Cost().Cents()
		minutes := q.EstimatedMinutes()

		dto.QuoteAddress = &address
		dto.QuoteDistanceKm = &distance
		dto.QuoteCost = &cost
		dto.QuoteMinutes = &minutes
	}

	lines := aggregate.Lines()
	dto.Lines = make([]BasketLineDTO, 0, len(lines))
	for i, line := range lines {
		dto.Lines = append(dto.Lines, BasketLineDTO{
			BasketID:  basketID,
			ProductID: line.ProductID().Bytes(),
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().Cents(),
			Quantity:  line.Quantity(),
			VendorID:  line.VendorID().Bytes(),
			Position:  i,
		})
	}

	return dto
}

// toDomain converts a database DTO to a basket aggregate.
// Reconstructs the aggregate through RestoreBasket so the single-vendor
// invariant is re-checked on every load.
func toDomain(dto BasketDTO) (*basket.Basket, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]basket.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	var vendorRef *basket.VendorRef
	if dto.VendorID != nil {
		vendorID, vendorErr := kernel.UUIDFromBytes((*dto.VendorID)[:])
		if vendorErr != nil {
			return nil, vendorErr
		}

		var image string
		if dto.VendorImage != nil {
			image = *dto.VendorImage
		}

		ref, vendorErr := basket.NewVendorRef(vendorID, deref(dto.VendorName), deref(dto.VendorAddress), image)
		if vendorErr != nil {
			return nil, vendorErr
		}
		vendorRef = &ref
	}

	var quote *kernel.DeliveryQuote
	if dto.QuoteAddress != nil && dto.QuoteDistanceKm != nil {
		q, quoteErr := kernel.NewDeliveryQuote(*dto.QuoteAddress, *dto.QuoteDistanceKm)
		if quoteErr != nil {
			return nil, quoteErr
		}
		quote = &q
	}

	return basket.RestoreBasket(id, lines, vendorRef, quote)
}

func lineToDomain(dto BasketLineDTO) (basket.Line, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return basket.Line{}, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return basket.Line{}, err
	}

	unitPrice, err := kernel.MoneyFromCents(dto.UnitPrice)
	if err != nil {
		return basket.Line{}, err
	}

	return basket.NewLine(productID, dto.Name, unitPrice, dto.Quantity, vendorID)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
