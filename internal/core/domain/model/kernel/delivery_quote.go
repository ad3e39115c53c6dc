package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"grocery/internal/pkg/errs"
)

const (
	// MinDeliveryDistanceKm is the shortest distance the marketplace delivers over.
	MinDeliveryDistanceKm = 1.0
	// MaxDeliveryDistanceKm is the longest distance the marketplace delivers over.
	MaxDeliveryDistanceKm = 10.0

	// DeliveryBaseFee is the flat fee charged on every delivery, in cents ($2.99).
	DeliveryBaseFee Money = 299
	// DeliveryFeePerKm is the variable fee per kilometer, in cents ($1.00).
	DeliveryFeePerKm int64 = 100

	// DeliveryBaseMinutes is the fixed preparation time included in every estimate.
	DeliveryBaseMinutes = 30
	// DeliveryMinutesPerKm is the travel time added per kilometer.
	DeliveryMinutesPerKm = 3
)

// ErrDeliveryQuoteIsNotConstructed is returned when validating a zero-value DeliveryQuote.
var ErrDeliveryQuoteIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery quote must be created via NewDeliveryQuote")

// DeliveryQuote is an immutable delivery cost and time estimate, produced once per
// checkout attempt and copied onto the order at placement.
//
// Cost and estimated minutes are derived from the distance:
//
//	cost    = $2.99 + $1.00 × distanceKm   (rounded to the nearest cent)
//	minutes = 30 + floor(distanceKm × 3)
type DeliveryQuote struct {
	address          string
	distanceKm       float64
	cost             Money
	estimatedMinutes int
	guard            ConstructorGuard
}

// NewDeliveryQuote prices a delivery to the given address over the given distance.
// The address must be non-blank and the distance within
// [MinDeliveryDistanceKm, MaxDeliveryDistanceKm].
func NewDeliveryQuote(address string, distanceKm float64) (DeliveryQuote, error) {
	quote := DeliveryQuote{
		guard: NewConstructorGuard(),
	}

	if err := errors.Join(
		quote.setAddress(address),
		quote.setDistanceKm(distanceKm),
	); err != nil {
		return DeliveryQuote{}, err
	}

	quote.cost = DeliveryBaseFee + Money(math.Round(distanceKm*float64(DeliveryFeePerKm)))
	quote.estimatedMinutes = DeliveryBaseMinutes + int(math.Floor(distanceKm*DeliveryMinutesPerKm))

	return quote, nil
}

// Validate checks that the DeliveryQuote was created through NewDeliveryQuote.
func (q DeliveryQuote) Validate() error {
	return q.guard.Validate(ErrDeliveryQuoteIsNotConstructed)
}

// Address returns the delivery address the quote was priced for.
func (q DeliveryQuote) Address() string {
	return q.address
}

// DistanceKm returns the estimated distance in kilometers.
func (q DeliveryQuote) DistanceKm() float64 {
	return q.distanceKm
}

// Cost returns the delivery cost.
func (q DeliveryQuote) Cost() Money {
	return q.cost
}

// EstimatedMinutes returns the estimated delivery time in minutes.
func (q DeliveryQuote) EstimatedMinutes() int {
	return q.estimatedMinutes
}

// String returns a short human-readable summary for logs.
func (q DeliveryQuote) String() string {
	return fmt.Sprintf("DeliveryQuote(%.1fkm, %s, %dmin)", q.distanceKm, q.cost, q.estimatedMinutes)
}

func (q *DeliveryQuote) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	q.address = address
	return nil
}

func (q *DeliveryQuote) setDistanceKm(distanceKm float64) error {
	if distanceKm < MinDeliveryDistanceKm || distanceKm > MaxDeliveryDistanceKm {
		return errs.NewValueIsOutOfRangeError(
			"distanceKm", distanceKm, MinDeliveryDistanceKm, MaxDeliveryDistanceKm)
	}
	q.distanceKm = distanceKm
	return nil
}
