package ports

import (
	"context"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for staff accounts.
type StaffRepository interface {
	// Add persists a new staff account to storage.
	Add(ctx context.Context, aggregate *staff.Staff) error

	// Update persists changes to an existing staff account.
	Update(ctx context.Context, aggregate *staff.Staff) error

	// Get retrieves a staff account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)

	// GetByEmail retrieves a staff account by its unique login email.
	GetByEmail(ctx context.Context, email string) (*staff.Staff, error)
}
