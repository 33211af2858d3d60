package order

import (
	"fmt"

	"pickuphub/internal/pkg/errs"
)

// Status represents the lifecycle state of a pickup order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct warehouse workflow.
//
// State transitions:
//
//	Received ──> Ready ──> PickedUp
//
// Transitions are monotonic: an order never moves back to an earlier state.
// PickedUp is a final state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusReceived is the initial status assigned at intake.
	// Volumes are shelved while the order is in this status.
	StatusReceived

	// StatusReady indicates every volume is shelved and the order is
	// available for pickup at the counter.
	StatusReady

	// StatusPickedUp indicates the recipient collected the order.
	// This is a final state with no further transitions allowed.
	StatusPickedUp
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		StatusReceived: "Received",
		StatusReady:    "Ready",
		StatusPickedUp: "PickedUp",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusReceived: "Received",
		StatusReady:    "Ready",
		StatusPickedUp: "PickedUp",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Received, Ready, PickedUp.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value;
// invalid values are reported as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as produced by String.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", value))
}
