package ports

import (
	"context"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/payment"
)

// EventPublisher defines the outbound contract for domain notifications.
// Events are published after the owning transaction commits; a publish failure
// is logged and never fails the business operation.
type EventPublisher interface {
	// PublishBasketConfirmed announces that a basket was converted into an order.
	PublishBasketConfirmed(ctx context.Context, aggregate *order.Order) error

	// PublishOrderStatusChanged announces a lifecycle stage change.
	PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error

	// PublishRiderPaymentCreated announces a freshly created commission payment.
	PublishRiderPaymentCreated(ctx context.Context, aggregate *payment.RiderPayment) error
}
