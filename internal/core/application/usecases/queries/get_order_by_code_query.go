package queries

import (
	"errors"

	"pickuphub/internal/pkg/errs"
	"pickuphub/internal/pkg/guard"
)

var ErrGetOrderByCodeQueryIsNotConstructed = errors.New(
	"GetOrderByCodeQuery must be created via NewGetOrderByCodeQuery constructor",
)

// GetOrderByCodeQuery retrieves the full view of one order by its public
// tracking code.
type GetOrderByCodeQuery struct {
	code string

	guard guard.ConstructorGuard
}

// NewGetOrderByCodeQuery creates a detail query for the given tracking code.
func NewGetOrderByCodeQuery(code string) (GetOrderByCodeQuery, error) {
	if code == "" {
		return GetOrderByCodeQuery{}, errs.NewValueIsRequiredError("code")
	}

	return GetOrderByCodeQuery{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByCodeQueryIsNotConstructed)
}

// Code returns the tracking code being looked up.
func (q GetOrderByCodeQuery) Code() string {
	return q.code
}
