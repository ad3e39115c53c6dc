// Package riderrepo provides data transfer objects and mapping functions for the
// seeded rider directory. Riders are reference data: the application reads them
// to credit deliveries but never creates or modifies them at runtime.
package riderrepo

import (
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for the rider directory.
// Payout details are flattened into bank_* columns.
type RiderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Phone             string    `gorm:"type:varchar(32)"`
	Email             string    `gorm:"type:varchar(255)"`
	Rating            float64   `gorm:"not null"`
	Status            string    `gorm:"type:varchar(32);not null;index"`
	Vehicle           string    `gorm:"type:varchar(64)"`
	BankAccountName   string    `gorm:"type:varchar(255);not null"`
	BankAccountNumber string    `gorm:"type:varchar(64);not null"`
	BankName          string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for riders.
func (RiderDTO) TableName() string {
	return "riders"
}

// toDomain converts a database DTO to a rider profile.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := rider.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	bank, err := rider.NewBankDetails(dto.BankAccountName, dto.BankAccountNumber, dto.BankName)
	if err != nil {
		return nil, err
	}

	return rider.NewRider(id, dto.Name, dto.Phone, dto.Email, dto.Rating, status, dto.Vehicle, bank)
}
