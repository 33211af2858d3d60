package queries

import (
	"context"

	"gorm.io/gorm"

	"pickuphub/internal/core/domain/model/order"
	"pickuphub/internal/pkg/errs"
)

// CountOrdersByDayQueryHandler counts lifecycle transitions per calendar
// day.
type CountOrdersByDayQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersByDayQueryHandler creates a handler for daily counts.
func NewCountOrdersByDayQueryHandler(db *gorm.DB) CountOrdersByDayQueryHandler {
	return CountOrdersByDayQueryHandler{db: db}
}

// Handle counts orders whose status timestamp falls within the day's
// half-open bounds [midnight, next midnight).
func (h CountOrdersByDayQueryHandler) Handle(ctx context.Context, query CountOrdersByDayQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	column, err := timestampColumn(query.Status())
	if err != nil {
		return 0, err
	}

	from := startOfDay(query.Day())
	to := from.AddDate(0, 0, 1)

	var count int64
	err = h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM orders WHERE "+column+" >= ? AND "+column+" < ?",
		from, to,
	).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// timestampColumn maps a lifecycle status to the column recording when
// orders entered it.
func timestampColumn(status order.Status) (string, error) {
	switch status {
	case order.StatusReceived:
		return "created_at", nil
	case order.StatusReady:
		return "ready_at", nil
	case order.StatusPickedUp:
		return "picked_up_at", nil
	default:
		return "", errs.NewValueIsInvalidError("status")
	}
}
