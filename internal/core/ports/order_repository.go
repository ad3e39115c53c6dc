package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are keyed by their customer-facing order number.
type OrderRepository interface {
	// Add persists a newly placed order.
	// Fails when an order with the same number already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	// Uses the aggregate version for optimistic concurrency.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its order number.
	Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// GetAllUndelivered retrieves every order that has not yet reached the
	// Delivered status. Used by the lifecycle job to advance orders.
	GetAllUndelivered(ctx context.Context) ([]*order.Order, error)

	// GetAllDeliveredUnprompted retrieves delivered orders whose customers
	// have not yet been prompted for delivery verification.
	GetAllDeliveredUnprompted(ctx context.Context) ([]*order.Order, error)
}
