// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The customer-facing order number is the primary key; subtotal and total are
// denormalized so read models never recompute pricing.
type OrderDTO struct {
	Number int `gorm:"primaryKey;autoIncrement:false"`

	VendorID      uuid.UUID `gorm:"type:uuid;not null"`
	VendorName    string    `gorm:"type:varchar(255);not null"`
	VendorAddress string    `gorm:"type:varchar(255);not null"`

	QuoteAddress    string  `gorm:"type:varchar(255);not null"`
	QuoteDistanceKm float64 `gorm:"not null"`
	QuoteCost       int64   `gorm:"not null"`
	QuoteMinutes    int     `gorm:"not null"`

	Subtotal int64  `gorm:"not null"`
	Total    int64  `gorm:"not null"`
	Status   string `gorm:"type:varchar(32);not null;index"`

	CreatedAt            time.Time `gorm:"not null"`
	DeliveredAt          *time.Time
	AwaitingVerification bool `gorm:"not null"`
	DeliveryVerified     bool `gorm:"not null"`
	RiderID              *uuid.UUID `gorm:"type:uuid"`

	Version int `gorm:"not null"`

	Lines []OrderLineDTO `gorm:"foreignKey:OrderNumber;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order aggregates.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one purchased line item, frozen at placement.
type OrderLineDTO struct {
	OrderNumber int       `gorm:"primaryKey;autoIncrement:false"`
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	UnitPrice   int64     `gorm:"not null"`
	Quantity    int       `gorm:"not null"`
	Position    int       `gorm:"not null"`
}

// TableName specifies the database table name for order line items.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	number := aggregate.Number().Value()

	var riderID *uuid.UUID
	if id := aggregate.RiderID(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	lines := aggregate.Lines()
	lineDtos := make([]OrderLineDTO, 0, len(lines))
	for i, line := range lines {
		lineDtos = append(lineDtos, OrderLineDTO{
			OrderNumber: number,
			ProductID:   line.ProductID().Bytes(),
			Name:        line.Name(),
			UnitPrice:   line.UnitPrice().Cents(),
			Quantity:    line.Quantity(),
			Position:    i,
		})
	}

	return OrderDTO{
		Number:               number,
		VendorID:             aggregate.Vendor().ID().Bytes(),
		VendorName:           aggregate.Vendor().Name(),
		VendorAddress:        aggregate.Vendor().Address(),
		QuoteAddress:         aggregate.Quote().Address(),
		QuoteDistanceKm:      aggregate.Quote().DistanceKm(),
		QuoteCost:            aggregate.Quote().Cost().Cents(),
		QuoteMinutes:         aggregate.Quote().EstimatedMinutes(),
		Subtotal:             aggregate.Subtotal().Cents(),
		Total:                aggregate.Total().Cents(),
		Status:               aggregate.Status().String(),
		CreatedAt:            aggregate.CreatedAt(),
		DeliveredAt:          aggregate.DeliveredAt(),
		AwaitingVerification: aggregate.IsAwaitingVerification(),
		DeliveryVerified:     aggregate.IsDeliveryVerified(),
		RiderID:              riderID,
		Version:              aggregate.Version(),
		Lines:                lineDtos,
	}
}

// toDomain converts a database DTO to an order aggregate.
// Reconstructs the aggregate through RestoreOrder so the consistency rules
// between status and verification state are re-checked on every load.
func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := kernel.NewOrderNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	vendorRef, err := order.NewVendorRef(vendorID, dto.VendorName, dto.VendorAddress)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	quote, err := kernel.NewDeliveryQuote(dto.QuoteAddress, dto.QuoteDistanceKm)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	return order.RestoreOrder(
		number,
		vendorRef,
		lines,
		quote,
		status,
		dto.CreatedAt,
		dto.DeliveredAt,
		dto.AwaitingVerification,
		dto.DeliveryVerified,
		riderID,
		dto.Version,
	)
}

func lineToDomain(dto OrderLineDTO) (order.Line, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Line{}, err
	}

	unitPrice, err := kernel.MoneyFromCents(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(productID, dto.Name, unitPrice, dto.Quantity)
}
