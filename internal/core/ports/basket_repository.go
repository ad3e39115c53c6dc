package ports

import (
	"context"

	"grocery/internal/core/domain/model/basket"
	"grocery/internal/core/domain/model/kernel"
)

// BasketRepository defines the persistence contract for basket aggregates.
// One basket exists per shopping session; Save upserts the whole aggregate
// since any mutation may add, merge, or remove lines.
type BasketRepository interface {
	// Save persists the basket aggregate, creating it on first use.
	Save(ctx context.Context, aggregate *basket.Basket) error

	// Get retrieves a basket by its session identifier.
	// Returns errs.ErrObjectNotFound when no basket exists for the session.
	Get(ctx context.Context, id kernel.UUID) (*basket.Basket, error)
}
