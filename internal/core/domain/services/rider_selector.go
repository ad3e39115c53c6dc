package services

import (
	"errors"

	"grocery/internal/core/domain/model/rider"
)

// ErrNoRidersAvailable is returned when no active rider can be credited with a
// delivery. This occurs when either no riders are provided or every provided
// rider is suspended.
var ErrNoRidersAvailable = errors.New("no riders available")

// RiderSelector is a domain service that picks the rider to credit when a
// delivery is verified.
//
// Business rules:
//   - Suspended riders are never selected
//   - Among active riders the highest rated one wins
//   - Ties go to the first rider in the provided order
//
// Example usage:
//
//	selector := services.NewRiderSelector()
//	selected, err := selector.Select(riders)
//	if errors.Is(err, services.ErrNoRidersAvailable) {
//	    // No active riders registered
//	    return
//	}
type RiderSelector struct{}

// NewRiderSelector creates a new RiderSelector instance.
func NewRiderSelector() RiderSelector {
	return RiderSelector{}
}

// Select picks the best available rider from the given slice.
//
// Returns:
//   - the highest rated active rider
//   - ErrNoRidersAvailable if no rider is active, or validation errors
func (s RiderSelector) Select(riders []*rider.Rider) (*rider.Rider, error) {
	var (
		best       *rider.Rider
		bestRating = -1.0
	)

	for _, r := range riders {
		if err := r.Validate(); err != nil {
			return nil, err
		}

		if !r.IsActive() {
			continue
		}

		if r.Rating() > bestRating {
			bestRating = r.Rating()
			best = r
		}
	}

	if best == nil {
		return nil, ErrNoRidersAvailable
	}

	return best, nil
}
