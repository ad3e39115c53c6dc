package orderrepo

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// ErrConcurrentModification is returned by Update when the stored row no longer
// carries the version the aggregate was loaded with.
var ErrConcurrentModification = errors.New("order was modified by a concurrent transaction")

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly placed order and its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves lifecycle changes to an existing order. Line items are frozen
// at placement, so only the order row is written. The stored version guards
// against concurrent lifecycle transitions.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("number = ? AND version = ?", dto.Number, dto.Version).
		Updates(map[string]any{
			"status":                dto.Status,
			"delivered_at":          dto.DeliveredAt,
			"awaiting_verification": dto.AwaitingVerification,
			"delivery_verified":     dto.DeliveryVerified,
			"rider_id":              dto.RiderID,
			"version":               dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrConcurrentModification
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get retrieves an order by its customer-facing number.
func (r *GormOrderRepository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "number = ?", number.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUndelivered retrieves every order that has not yet reached Delivered,
// oldest first, for the lifecycle job.
func (r *GormOrderRepository) GetAllUndelivered(ctx context.Context) ([]*order.Order, error) {
	return r.findAll(ctx, "status <> ?", order.Delivered.String())
}

// GetAllDeliveredUnprompted retrieves delivered orders whose customers have not
// yet been prompted for delivery verification.
func (r *GormOrderRepository) GetAllDeliveredUnprompted(ctx context.Context) ([]*order.Order, error) {
	return r.findAll(ctx,
		"status = ? AND awaiting_verification = false AND delivery_verified = false",
		order.Delivered.String())
}

func (r *GormOrderRepository) findAll(ctx context.Context, query string, args ...any) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("created_at").
		Find(&dtos, append([]any{query}, args...)...).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
