package services

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// DistanceEstimator estimates the distance in kilometers between a supermarket
// and a delivery address. The production implementation draws a plausible
// distance at random; a routing provider would slot in behind the same interface.
type DistanceEstimator interface {
	EstimateKm(ctx context.Context, vendorAddress string, deliveryAddress string) (float64, error)
}

// QuoteCalculator is a domain service that prices a delivery during checkout.
// It asks the estimator for the distance and derives cost and time through
// kernel.NewDeliveryQuote, so the pricing formula lives in exactly one place.
type QuoteCalculator struct {
	estimator DistanceEstimator
}

// NewQuoteCalculator creates a QuoteCalculator backed by the given estimator.
func NewQuoteCalculator(estimator DistanceEstimator) (QuoteCalculator, error) {
	if estimator == nil {
		return QuoteCalculator{}, errs.NewValueIsRequiredError("estimator")
	}
	return QuoteCalculator{estimator: estimator}, nil
}

// Calculate prices a delivery from the vendor's address to the customer's.
// The delivery address must be non-blank; kernel.NewDeliveryQuote enforces it.
func (c QuoteCalculator) Calculate(
	ctx context.Context,
	vendorAddress string,
	deliveryAddress string,
) (kernel.DeliveryQuote, error) {
	distanceKm, err := c.estimator.EstimateKm(ctx, vendorAddress, deliveryAddress)
	if err != nil {
		return kernel.DeliveryQuote{}, err
	}

	return kernel.NewDeliveryQuote(deliveryAddress, distanceKm)
}
