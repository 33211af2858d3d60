package order

import (
	"errors"
	"time"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created
// through NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// Event is an immutable audit record attached to an order. Events are
// appended by the application layer as a side effect of every state-changing
// operation and are never mutated or deleted afterwards.
type Event struct {
	// id is the unique identifier for the event
	id kernel.UUID

	// orderID is the owning order, set when the event is appended
	orderID kernel.UUID

	// eventType classifies the recorded action
	eventType EventType

	// payload is a free-text description of what happened
	payload string

	// actor is the authenticated principal or system name attributed
	actor string

	// createdAt is the moment the event was recorded, set once
	createdAt time.Time

	// isConstructed ensures the event was created via a constructor
	isConstructed bool
}

// NewEvent creates an audit event ready to be appended to an order.
// The actor and timestamp are required; the payload may be empty.
func NewEvent(id kernel.UUID, eventType EventType, actor, payload string, createdAt time.Time) (*Event, error) {
	event := &Event{
		payload:       payload,
		isConstructed: true,
	}

	if err := errors.Join(
		event.setID(id),
		event.setType(eventType),
		event.setActor(actor),
		event.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return event, nil
}

// RestoreEvent reconstructs an Event from persistent storage.
func RestoreEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	eventType EventType,
	actor, payload string,
	createdAt time.Time,
) (*Event, error) {
	event, err := NewEvent(id, eventType, actor, payload, createdAt)
	if err != nil {
		return nil, err
	}

	if err = orderID.Validate(); err != nil {
		return nil, err
	}

	event.orderID = orderID
	return event, nil
}

// Validate ensures the Event instance was properly constructed.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// OrderID returns the owning order's identifier.
func (e *Event) OrderID() kernel.UUID {
	return e.orderID
}

// Type returns the event classification.
func (e *Event) Type() EventType {
	return e.eventType
}

// Payload returns the free-text description of the recorded action.
func (e *Event) Payload() string {
	return e.payload
}

// Actor returns the identity attributed to the recorded action.
func (e *Event) Actor() string {
	return e.actor
}

// CreatedAt returns the moment the event was recorded.
func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Event) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Event) setType(eventType EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	e.eventType = eventType
	return nil
}

func (e *Event) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	e.actor = actor
	return nil
}

func (e *Event) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("event timestamp")
	}
	e.createdAt = createdAt
	return nil
}
