package queries

import (
	"errors"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/pkg/guard"
)

var ErrListFreePositionsQueryIsNotConstructed = errors.New(
	"ListFreePositionsQuery must be created via NewListFreePositionsQuery constructor",
)

// ListFreePositionsQuery retrieves every unoccupied storage slot.
type ListFreePositionsQuery struct {
	guard guard.ConstructorGuard
}

// NewListFreePositionsQuery creates a query for unoccupied slots. This is a
// parameterless query.
func NewListFreePositionsQuery() ListFreePositionsQuery {
	return ListFreePositionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListFreePositionsQuery) Validate() error {
	return q.guard.Validate(ErrListFreePositionsQueryIsNotConstructed)
}

// PositionView is the read model of a storage slot.
type PositionView struct {
	ID     kernel.UUID
	Street string
	Module string
	Level  string
	Box    string
}

// Code renders the four-part slot address as a single label.
func (v PositionView) Code() string {
	return v.Street + "-" + v.Module + "-" + v.Level + "-" + v.Box
}
