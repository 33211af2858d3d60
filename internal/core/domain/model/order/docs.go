// Package order implements the pickup order aggregate and its lifecycle
// state machine.
//
// An Order aggregates the physical parcel units (Volume) registered for a
// pickup request together with an append-only audit trail (Event). The
// aggregate root owns its volumes and events: they are created, addressed,
// and mutated only through the Order, never as free-standing objects.
//
// Lifecycle:
//
//	Received ──> Ready ──> PickedUp
//
// Transitions are monotonic; there is no backward transition. The transition
// methods MarkReady and MarkPickedUp deliberately no-op without error when
// their precondition is not met, so that at-least-once callers can replay
// them safely. Surfacing a failed precondition to the caller is the
// responsibility of the application layer.
package order
