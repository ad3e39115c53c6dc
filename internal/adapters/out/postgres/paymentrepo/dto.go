// Package paymentrepo provides data transfer objects and mapping functions for
// rider payment persistence. The unique index on the order number is the
// database-level backstop for the one-payment-per-order rule.
package paymentrepo

import (
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// RiderPaymentDTO represents the database structure for persisting commission payments.
type RiderPaymentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RiderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderNumber int       `gorm:"not null;uniqueIndex"`
	Amount      int64     `gorm:"not null"`
	Status      string    `gorm:"type:varchar(32);not null"`
	Date        time.Time `gorm:"not null"`
}

// TableName specifies the database table name for rider payments.
func (RiderPaymentDTO) TableName() string {
	return "rider_payments"
}

// fromDomain converts a payment aggregate to its database representation.
func fromDomain(aggregate *payment.RiderPayment) RiderPaymentDTO {
	return RiderPaymentDTO{
		ID:          aggregate.ID().Bytes(),
		RiderID:     aggregate.RiderID().Bytes(),
		OrderNumber: aggregate.OrderNumber().Value(),
		Amount:      aggregate.Amount().Cents(),
		Status:      aggregate.Status().String(),
		Date:        aggregate.Date(),
	}
}

// toDomain converts a database DTO to a payment aggregate using RestoreRiderPayment.
func toDomain(dto RiderPaymentDTO) (*payment.RiderPayment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	riderID, err := kernel.UUIDFromBytes(dto.RiderID[:])
	if err != nil {
		return nil, err
	}

	orderNumber, err := kernel.NewOrderNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.MoneyFromCents(dto.Amount)
	if err != nil {
		return nil, err
	}

	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestoreRiderPayment(id, riderID, orderNumber, amount, status, dto.Date)
}
