package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves the full order view by identifier.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for order detail lookups.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle returns the order with its volumes and events, or an
// ObjectNotFoundError when no order has the given identifier.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	return loadOrderView(ctx, h.db, "orderId", query.OrderID().String(), `
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().String())
}
