package ports

import (
	"context"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/position"
)

// PositionRepository defines the persistence contract for storage slots.
type PositionRepository interface {
	// Add persists a new position to storage.
	Add(ctx context.Context, aggregate *position.Position) error

	// Update persists changes to an existing position.
	Update(ctx context.Context, aggregate *position.Position) error

	// Get retrieves a position by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*position.Position, error)

	// ListAll retrieves every position ordered lexicographically by
	// (street, module, level, box).
	ListAll(ctx context.Context) ([]*position.Position, error)

	// SuggestAvailable retrieves the first unoccupied position in the same
	// lexicographic order, or an ObjectNotFoundError when none is free.
	SuggestAvailable(ctx context.Context) (*position.Position, error)

	// Occupy sets the occupied flag of the given position. Idempotent;
	// silently does nothing when the position does not exist.
	Occupy(ctx context.Context, id kernel.UUID) error

	// Release clears the occupied flag of the given position. Idempotent;
	// silently does nothing when the position does not exist.
	Release(ctx context.Context, id kernel.UUID) error
}
