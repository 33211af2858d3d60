package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderByCodeQueryHandler retrieves the full order view by tracking code.
type GetOrderByCodeQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByCodeQueryHandler creates a handler for tracking code lookups.
func NewGetOrderByCodeQueryHandler(db *gorm.DB) GetOrderByCodeQueryHandler {
	return GetOrderByCodeQueryHandler{db: db}
}

// Handle returns the order with its volumes and events, or an
// ObjectNotFoundError when no order has the given code.
func (h GetOrderByCodeQueryHandler) Handle(ctx context.Context, query GetOrderByCodeQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	return loadOrderView(ctx, h.db, "code", query.Code(), `
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE code = ?
	`, query.Code())
}
