package queries

import (
	"errors"

	"pickuphub/internal/pkg/guard"
)

var ErrSuggestPositionQueryIsNotConstructed = errors.New(
	"SuggestPositionQuery must be created via NewSuggestPositionQuery constructor",
)

// SuggestPositionQuery retrieves the next slot an operator should shelve
// into: the first free slot in walking order.
type SuggestPositionQuery struct {
	guard guard.ConstructorGuard
}

// NewSuggestPositionQuery creates a slot suggestion query.
func NewSuggestPositionQuery() SuggestPositionQuery {
	return SuggestPositionQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q SuggestPositionQuery) Validate() error {
	return q.guard.Validate(ErrSuggestPositionQueryIsNotConstructed)
}
