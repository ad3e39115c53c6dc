// Package vendorrepo provides read access to the seeded supermarket directory.
// Vendors are reference data loaded by migrations; the application only reads them.
package vendorrepo

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/vendor"
	"grocery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendorDTO represents the database structure for the supermarket directory.
type VendorDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Address      string    `gorm:"type:varchar(255);not null"`
	Image        string    `gorm:"type:varchar(512)"`
	DeliveryTime string    `gorm:"type:varchar(64)"`
}

// TableName specifies the database table name for vendors.
func (VendorDTO) TableName() string {
	return "vendors"
}

// GormVendorRepository implements VendorRepository using GORM.
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GORM vendor repository.
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// Get retrieves a supermarket by identifier.
func (r *GormVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VendorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vendor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vendor.NewVendor(id, dto.Name, dto.Address, dto.Image, dto.DeliveryTime)
}
