package paymentrepo

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/payment"
	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly created commission payment. The unique index on the order
// number rejects a second payment for the same delivery.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.RiderPayment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update saves status changes to an existing payment.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.RiderPayment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RiderPaymentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get retrieves a payment by identifier.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.RiderPayment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RiderPaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderNumber retrieves the payment created for the given order.
func (r *GormPaymentRepository) GetByOrderNumber(
	ctx context.Context,
	number kernel.OrderNumber,
) (*payment.RiderPayment, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto RiderPaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", number.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
