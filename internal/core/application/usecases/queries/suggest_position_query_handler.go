package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/pkg/errs"
)

// SuggestPositionQueryHandler picks the next slot to shelve into.
type SuggestPositionQueryHandler struct {
	db *gorm.DB
}

// NewSuggestPositionQueryHandler creates a handler for slot suggestions.
func NewSuggestPositionQueryHandler(db *gorm.DB) SuggestPositionQueryHandler {
	return SuggestPositionQueryHandler{db: db}
}

// Handle returns the first free slot in walking order, or an
// ObjectNotFoundError when the warehouse is full.
func (h SuggestPositionQueryHandler) Handle(ctx context.Context, query SuggestPositionQuery) (PositionView, error) {
	if err := query.Validate(); err != nil {
		return PositionView{}, err
	}

	var view PositionView
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			street,
			module,
			level,
			box
		FROM positions
		WHERE occupied = false
		ORDER BY street, module, level, box
		LIMIT 1
	`).Row()

	err := row.Scan(&id, &view.Street, &view.Module, &view.Level, &view.Box)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PositionView{}, errs.NewObjectNotFoundError("position", "free")
		}
		return PositionView{}, err
	}

	positionID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return PositionView{}, idErr
	}
	view.ID = positionID

	return view, nil
}
