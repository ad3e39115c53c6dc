package payment

import (
	"fmt"

	"grocery/internal/pkg/errs"
)

// Status represents the settlement state of a rider payment.
//
// State transitions:
//
//	Pending ──> Approved
//
// Approved is terminal; a payment is approved at most once.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly created payment.
	StatusPending

	// StatusApproved indicates the payment has been released to the rider.
	StatusApproved
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusApproved: "approved",
	}
}

// StatusFromString parses a persisted status string back into a Status.
func StatusFromString(value string) (Status, error) {
	switch value {
	case "pending":
		return StatusPending, nil
	case "approved":
		return StatusApproved, nil
	default:
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid payment status", value))
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != StatusPending && s != StatusApproved {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the lowercase name of the status, e.g. "pending".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
