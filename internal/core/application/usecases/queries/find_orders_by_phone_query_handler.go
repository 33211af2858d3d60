package queries

import (
	"context"

	"gorm.io/gorm"
)

// FindOrdersByPhoneQueryHandler retrieves orders by recipient phone
// fragment.
type FindOrdersByPhoneQueryHandler struct {
	db *gorm.DB
}

// NewFindOrdersByPhoneQueryHandler creates a handler for phone lookups.
func NewFindOrdersByPhoneQueryHandler(db *gorm.DB) FindOrdersByPhoneQueryHandler {
	return FindOrdersByPhoneQueryHandler{db: db}
}

// Handle returns every order whose recipient phone contains the fragment,
// newest first, each with its volumes and events. An empty result is not an
// error.
func (h FindOrdersByPhoneQueryHandler) Handle(ctx context.Context, query FindOrdersByPhoneQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadOrderViews(ctx, h.db, `
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE recipient_phone LIKE ?
		ORDER BY created_at DESC
	`, "%"+query.Phone()+"%")
}
