// Package rabbitmq provides the AMQP implementation of the event publisher.
// Events are emitted after the owning transaction commits; downstream consumers
// (notifications, analytics) read them from durable queues.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/payment"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	BasketConfirmedQueue     = "basket.confirmed"
	OrderStatusChangedQueue  = "order.status_changed"
	RiderPaymentCreatedQueue = "rider_payment.created"

	publishTimeout = 3 * time.Second
)

// basketConfirmedEvent announces that a basket was converted into an order.
type basketConfirmedEvent struct {
	EventType   string    `json:"eventType"`
	OrderNumber string    `json:"orderNumber"`
	VendorName  string    `json:"vendorName"`
	TotalCents  int64     `json:"totalCents"`
	Timestamp   time.Time `json:"timestamp"`
}

// orderStatusChangedEvent announces a lifecycle stage change.
type orderStatusChangedEvent struct {
	EventType   string    `json:"eventType"`
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

// riderPaymentCreatedEvent announces a freshly created commission payment.
type riderPaymentCreatedEvent struct {
	EventType   string    `json:"eventType"`
	PaymentID   string    `json:"paymentId"`
	RiderID     string    `json:"riderId"`
	OrderNumber string    `json:"orderNumber"`
	AmountCents int64     `json:"amountCents"`
	Timestamp   time.Time `json:"timestamp"`
}

// Publisher implements EventPublisher on top of a RabbitMQ channel.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher opens a channel and declares the durable queues, so publish
// never fails due to missing infra.
func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	for _, queue := range []string{BasketConfirmedQueue, OrderStatusChangedQueue, RiderPaymentCreatedQueue} {
		if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			return nil, fmt.Errorf("declare %s: %w", queue, err)
		}
	}

	return &Publisher{ch: ch}, nil
}

// Close releases the underlying channel.
func (p *Publisher) Close() error {
	return p.ch.Close()
}

// PublishBasketConfirmed announces that a basket was converted into an order.
func (p *Publisher) PublishBasketConfirmed(ctx context.Context, aggregate *order.Order) error {
	ev := basketConfirmedEvent{
		EventType:   "BasketConfirmed",
		OrderNumber: aggregate.Number().String(),
		VendorName:  aggregate.Vendor().Name(),
		TotalCents:  aggregate.Total().Cents(),
		Timestamp:   time.Now().UTC(),
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal BasketConfirmed: %w", err)
	}

	return p.publishJSON(ctx, BasketConfirmedQueue, body)
}

// PublishOrderStatusChanged announces a lifecycle stage change.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	ev := orderStatusChangedEvent{
		EventType:   "OrderStatusChanged",
		OrderNumber: aggregate.Number().String(),
		Status:      aggregate.Status().String(),
		Timestamp:   time.Now().UTC(),
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal OrderStatusChanged: %w", err)
	}

	return p.publishJSON(ctx, OrderStatusChangedQueue, body)
}

// PublishRiderPaymentCreated announces a freshly created commission payment.
func (p *Publisher) PublishRiderPaymentCreated(ctx context.Context, aggregate *payment.RiderPayment) error {
	ev := riderPaymentCreatedEvent{
		EventType:   "RiderPaymentCreated",
		PaymentID:   aggregate.ID().String(),
		RiderID:     aggregate.RiderID().String(),
		OrderNumber: aggregate.OrderNumber().String(),
		AmountCents: aggregate.Amount().Cents(),
		Timestamp:   time.Now().UTC(),
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal RiderPaymentCreated: %w", err)
	}

	return p.publishJSON(ctx, RiderPaymentCreatedQueue, body)
}

func (p *Publisher) publishJSON(ctx context.Context, routingKey string, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		"",         // default exchange
		routingKey, // queue name as routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
