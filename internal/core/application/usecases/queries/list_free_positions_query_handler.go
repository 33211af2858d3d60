package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pickuphub/internal/core/domain/model/kernel"
)

// ListFreePositionsQueryHandler retrieves unoccupied storage slots.
type ListFreePositionsQueryHandler struct {
	db *gorm.DB
}

// NewListFreePositionsQueryHandler creates a handler for free slot listings.
func NewListFreePositionsQueryHandler(db *gorm.DB) ListFreePositionsQueryHandler {
	return ListFreePositionsQueryHandler{db: db}
}

// Handle returns every free slot in walking order: street, then module,
// then level, then box.
func (h ListFreePositionsQueryHandler) Handle(
	ctx context.Context,
	query ListFreePositionsQuery,
) ([]PositionView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	positions := make([]PositionView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			street,
			module,
			level,
			box
		FROM positions
		WHERE occupied = false
		ORDER BY street, module, level, box
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view PositionView
		var id uuid.UUID

		if err = rows.Scan(&id, &view.Street, &view.Module, &view.Level, &view.Box); err != nil {
			return nil, err
		}

		positionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = positionID

		positions = append(positions, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}
