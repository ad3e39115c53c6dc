// Package geo provides the distance estimator used to price deliveries.
// A real deployment would call a routing service; the prototype draws a
// distance uniformly from the serviceable range instead.
package geo

import (
	"context"
	"math/rand/v2"

	"grocery/internal/core/domain/model/kernel"
)

// RandomEstimator draws delivery distances uniformly from
// [MinDeliveryDistanceKm, MaxDeliveryDistanceKm).
type RandomEstimator struct{}

// NewRandomEstimator creates a random distance estimator.
func NewRandomEstimator() RandomEstimator {
	return RandomEstimator{}
}

// EstimateKm returns a random distance within the serviceable range.
// The addresses are accepted for interface compatibility and ignored.
func (RandomEstimator) EstimateKm(_ context.Context, _ string, _ string) (float64, error) {
	spread := kernel.MaxDeliveryDistanceKm - kernel.MinDeliveryDistanceKm
	return kernel.MinDeliveryDistanceKm + rand.Float64()*spread, nil
}
