package rider

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

const (
	// MinRating is the lowest rider rating.
	MinRating = 0.0
	// MaxRating is the highest rider rating.
	MaxRating = 5.0
)

// ErrRiderIsNotConstructed is returned when a Rider was not created via NewRider.
var ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")

// Rider is a delivery rider registered with the marketplace. Riders come from
// the seeded directory; the marketplace selects an active rider to credit when
// a delivery is verified.
type Rider struct {
	id      kernel.UUID
	name    string
	phone   string
	email   string
	rating  float64
	status  Status
	vehicle string
	bank    BankDetails

	guard kernel.ConstructorGuard
}

// NewRider creates a rider profile.
func NewRider(
	id kernel.UUID,
	name string,
	phone string,
	email string,
	rating float64,
	status Status,
	vehicle string,
	bank BankDetails,
) (*Rider, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		bank.Validate(),
	); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if rating < MinRating || rating > MaxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	return &Rider{
		id:      id,
		name:    name,
		phone:   phone,
		email:   email,
		rating:  rating,
		status:  status,
		vehicle: vehicle,
		bank:    bank,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the rider was created through NewRider.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// ID returns the rider identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's full name.
func (r *Rider) Name() string {
	return r.name
}

// Phone returns the rider's contact phone number.
func (r *Rider) Phone() string {
	return r.phone
}

// Email returns the rider's contact email.
func (r *Rider) Email() string {
	return r.email
}

// Rating returns the rider's average customer rating, from 0 to 5.
func (r *Rider) Rating() float64 {
	return r.rating
}

// Status returns whether the rider is active or suspended.
func (r *Rider) Status() Status {
	return r.status
}

// Vehicle returns the rider's vehicle description, e.g. "Motorbike".
func (r *Rider) Vehicle() string {
	return r.vehicle
}

// Bank returns the payout bank details.
func (r *Rider) Bank() BankDetails {
	return r.bank
}

// IsActive reports whether the rider can be selected for deliveries.
func (r *Rider) IsActive() bool {
	return r.status == StatusActive
}

// IsEqual compares riders by identifier.
func (r *Rider) IsEqual(other *Rider) bool {
	return r.id.IsEqual(other.id)
}

// Status represents a rider's availability for deliveries.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive indicates the rider can be selected for deliveries.
	StatusActive

	// StatusSuspended indicates the rider is excluded from selection.
	StatusSuspended
)

// StatusFromString parses a persisted status string back into a Status.
func StatusFromString(value string) (Status, error) {
	switch value {
	case "active":
		return StatusActive, nil
	case "suspended":
		return StatusSuspended, nil
	default:
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid rider status", value))
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != StatusActive && s != StatusSuspended {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid rider status", s))
	}
	return nil
}

// String returns the lowercase name of the status, e.g. "active".
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusSuspended:
		return "suspended"
	default:
		return "unknown"
	}
}
