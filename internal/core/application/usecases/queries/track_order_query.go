package queries

import (
	"errors"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves the live tracking view of an order: its current
// lifecycle stage, progress along the delivery track, and whether the
// customer should be prompted for delivery verification.
type TrackOrderQuery struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking query for the given order number.
func NewTrackOrderQuery(orderNumber kernel.OrderNumber) (TrackOrderQuery, error) {
	query := TrackOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderNumber(orderNumber); err != nil {
		return TrackOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderNumber returns the tracked order number.
func (q TrackOrderQuery) OrderNumber() kernel.OrderNumber {
	return q.orderNumber
}

func (q *TrackOrderQuery) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	q.orderNumber = orderNumber
	return nil
}

// TrackOrderQueryResponse is the tracking screen payload.
type TrackOrderQueryResponse struct {
	OrderNumber          string              `json:"orderNumber"`
	Status               string              `json:"status"`
	StageIndex           int                 `json:"stageIndex"`
	VendorName           string              `json:"vendorName"`
	DeliveryAddress      string              `json:"deliveryAddress"`
	EstimatedMinutes     int                 `json:"estimatedMinutes"`
	SubtotalCents        int64               `json:"subtotalCents"`
	DeliveryCostCents    int64               `json:"deliveryCostCents"`
	TotalCents           int64               `json:"totalCents"`
	CreatedAt            time.Time           `json:"createdAt"`
	DeliveredAt          *time.Time          `json:"deliveredAt,omitempty"`
	AwaitingVerification bool                `json:"awaitingVerification"`
	DeliveryVerified     bool                `json:"deliveryVerified"`
	Lines                []OrderLineResponse `json:"lines"`
}

// OrderLineResponse is a purchased item as shown on the tracking screen.
type OrderLineResponse struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
}
