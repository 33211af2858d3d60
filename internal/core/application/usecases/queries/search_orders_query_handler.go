package queries

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/order"
)

// SearchOrdersQueryHandler retrieves order headers matching optional
// filters, newest first.
type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOrdersQueryHandler creates a handler for order searches.
// Requires a GORM database connection for query execution.
func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

// Handle builds a WHERE clause from the present filters and executes the
// search. Results are sorted by creation time, newest first.
func (h SearchOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersQuery,
) ([]SearchOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var conditions []string
	var args []any

	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, int(*status))
	}
	if channel := query.Channel(); channel != nil {
		conditions = append(conditions, "channel = ?")
		args = append(args, int(*channel))
	}
	if dateFrom := query.DateFrom(); dateFrom != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, startOfDay(*dateFrom))
	}
	if dateTo := query.DateTo(); dateTo != nil {
		conditions = append(conditions, "created_at < ?")
		args = append(args, startOfDay(*dateTo).AddDate(0, 0, 1))
	}
	if recipient := query.Recipient(); recipient != nil {
		conditions = append(conditions, "LOWER(recipient_name) LIKE ?")
		args = append(args, "%"+strings.ToLower(*recipient)+"%")
	}

	sql := `
		SELECT
			id,
			code,
			channel,
			status,
			recipient_name,
			created_at
		FROM orders
	`
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += " ORDER BY created_at DESC"

	orders := make([]SearchOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp SearchOrdersQueryResponse
		var id uuid.UUID
		var channel, status int

		err = rows.Scan(
			&id,
			&orderResp.Code,
			&channel,
			&status,
			&orderResp.RecipientName,
			&orderResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Channel = order.Channel(channel).String()
		orderResp.Status = order.Status(status).String()

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// startOfDay truncates a timestamp to midnight UTC of its calendar day.
func startOfDay(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
