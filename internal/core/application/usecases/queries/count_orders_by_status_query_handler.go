package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountOrdersByStatusQueryHandler counts orders currently in a status.
type CountOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersByStatusQueryHandler creates a handler for status counts.
func NewCountOrdersByStatusQueryHandler(db *gorm.DB) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{db: db}
}

// Handle counts orders in the given status, optionally restricted to one
// intake channel.
func (h CountOrdersByStatusQueryHandler) Handle(ctx context.Context, query CountOrdersByStatusQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	sql := "SELECT COUNT(*) FROM orders WHERE status = ?"
	args := []any{int(query.Status())}

	if channel := query.Channel(); channel != nil {
		sql += " AND channel = ?"
		args = append(args, int(*channel))
	}

	var count int64
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
