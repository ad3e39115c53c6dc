package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/rider"
)

// RiderRepository defines the read contract for the seeded rider directory.
type RiderRepository interface {
	// Get retrieves a rider by identifier.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetAllActive retrieves every rider eligible for delivery credit.
	GetAllActive(ctx context.Context) ([]*rider.Rider, error)
}
