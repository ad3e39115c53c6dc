package basketrepo

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/basket"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBasketRepository implements BasketRepository using GORM.
type GormBasketRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormBasketRepository creates a new GORM basket repository.
func NewGormBasketRepository(db *gorm.DB, tracker aggregateTracker) *GormBasketRepository {
	return &GormBasketRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save upserts the basket aggregate. Any mutation may add, merge, or remove
// lines, so the line set is rewritten as a whole.
func (r *GormBasketRepository) Save(ctx context.Context, aggregate *basket.Basket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	basketRow := dto
	basketRow.Lines = nil
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&basketRow).Error; err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("basket_id = ?", dto.ID).
		Delete(&BasketLineDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Lines) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get retrieves a basket by its session identifier.
func (r *GormBasketRepository) Get(ctx context.Context, id kernel.UUID) (*basket.Basket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BasketDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("basket", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
