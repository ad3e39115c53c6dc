package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for rider payments.
// The store enforces a unique constraint on the order number, so at most one
// payment can ever exist per order.
type PaymentRepository interface {
	// Add persists a newly created commission payment.
	Add(ctx context.Context, aggregate *payment.RiderPayment) error

	// Update persists changes to an existing payment.
	Update(ctx context.Context, aggregate *payment.RiderPayment) error

	// Get retrieves a payment by identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.RiderPayment, error)

	// GetByOrderNumber retrieves the payment created for the given order.
	// Returns errs.ErrObjectNotFound when the delivery has no payment yet.
	GetByOrderNumber(ctx context.Context, number kernel.OrderNumber) (*payment.RiderPayment, error)
}
