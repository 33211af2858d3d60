package ports

import (
	"context"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Add and Update cascade-persist the aggregate's volumes and events; the
// lookup methods reconstruct the full aggregate including both child
// collections.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// newly appended events and mutated volumes.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode retrieves an order aggregate by its unique code.
	// Used for the duplicate-code check at registration.
	GetByCode(ctx context.Context, code string) (*order.Order, error)

	// GetByVolumeID retrieves the order aggregate owning the given volume.
	// Volumes are addressed only through their owning aggregate.
	GetByVolumeID(ctx context.Context, volumeID kernel.UUID) (*order.Order, error)
}
