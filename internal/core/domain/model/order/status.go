package order

import (
	"fmt"

	"grocery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a single forward path so orders
// always progress through the same stages in the same sequence.
//
// State transitions:
//
//	Processing ──> Preparing ──> ReadyForPickup ──> PickedUp ──> InTransit ──> Delivered
//
// Every transition moves exactly one stage forward; Delivered is terminal.
// Status is a value object that validates transitions and provides the
// snake_case representations used for persistence and the public API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Processing is the initial status when an order is placed.
	// The supermarket has received the order and is confirming it.
	Processing

	// Preparing indicates the supermarket is picking and packing the items.
	Preparing

	// ReadyForPickup indicates the order is packed and waiting for a rider.
	ReadyForPickup

	// PickedUp indicates a rider has collected the order from the supermarket.
	PickedUp

	// InTransit indicates the rider is on the way to the customer.
	InTransit

	// Delivered indicates the order has reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Processing:     "processing",
		Preparing:      "preparing",
		ReadyForPickup: "ready_for_pickup",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		Delivered:      "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Processing:     "processing",
		Preparing:      "preparing",
		ReadyForPickup: "ready_for_pickup",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		Delivered:      "delivered",
	}
}

// StatusFromString parses a persisted status string back into a Status.
// Only the six valid lifecycle statuses are accepted.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are the six lifecycle stages from Processing to Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, e.g. "ready_for_pickup".
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
// Delivered is the only terminal status.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// StageIndex returns the zero-based position of the status on the lifecycle
// track, from 0 (Processing) to 5 (Delivered). Used to render order progress.
func (s Status) StageIndex() int {
	return int(s) - int(Processing)
}

// Next transitions the status one stage forward.
//
// Valid transitions follow the single lifecycle path:
//
//	Processing -> Preparing -> ReadyForPickup -> PickedUp -> InTransit -> Delivered
//
// Returns:
//   - (next stage, nil) on a valid transition
//   - (0, error) when called on Delivered or on an invalid status
//
// This method is used by Order.Advance() to enforce one-stage progression.
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is a terminal status", s.String()))
	}

	return s + 1, nil
}
