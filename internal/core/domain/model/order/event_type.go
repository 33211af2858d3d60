package order

import (
	"fmt"

	"pickuphub/internal/pkg/errs"
)

// EventType classifies audit events appended to an order.
type EventType int

const (
	// EventTypeUnknown represents an invalid or undefined event type.
	EventTypeUnknown EventType = iota

	// EventTypeCreation records the registration of the order.
	EventTypeCreation

	// EventTypeReady records a ready-for-pickup transition attempt.
	EventTypeReady

	// EventTypePickup records a pickup confirmation attempt.
	EventTypePickup

	// EventTypeAllocation records assigning or clearing a volume's position.
	EventTypeAllocation
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		EventTypeUnknown:    "Unknown",
		EventTypeCreation:   "Creation",
		EventTypeReady:      "Ready",
		EventTypePickup:     "Pickup",
		EventTypeAllocation: "Allocation",
	}
}

func getValidEventTypeStrings() map[EventType]string {
	//nolint:exhaustive // EventTypeUnknown is intentionally excluded as it's invalid
	return map[EventType]string{
		EventTypeCreation:   "Creation",
		EventTypeReady:      "Ready",
		EventTypePickup:     "Pickup",
		EventTypeAllocation: "Allocation",
	}
}

// Validate checks if the EventType value is valid.
func (t EventType) Validate() error {
	if _, ok := getValidEventTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"event type is invalid",
			fmt.Errorf("%d is not a valid event type", t),
		)
	}
	return nil
}

// String returns the human-readable name of the event type.
func (t EventType) String() string {
	if str, ok := getEventTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
