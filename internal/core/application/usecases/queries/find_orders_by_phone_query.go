package queries

import (
	"errors"

	"pickuphub/internal/pkg/errs"
	"pickuphub/internal/pkg/guard"
)

var ErrFindOrdersByPhoneQueryIsNotConstructed = errors.New(
	"FindOrdersByPhoneQuery must be created via NewFindOrdersByPhoneQuery constructor",
)

// FindOrdersByPhoneQuery retrieves the full views of every order whose
// recipient phone contains the given fragment. Used at the counter when a
// recipient shows up without a tracking code.
type FindOrdersByPhoneQuery struct {
	phone string

	guard guard.ConstructorGuard
}

// NewFindOrdersByPhoneQuery creates a phone lookup query.
func NewFindOrdersByPhoneQuery(phone string) (FindOrdersByPhoneQuery, error) {
	if phone == "" {
		return FindOrdersByPhoneQuery{}, errs.NewValueIsRequiredError("phone")
	}

	return FindOrdersByPhoneQuery{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindOrdersByPhoneQuery) Validate() error {
	return q.guard.Validate(ErrFindOrdersByPhoneQueryIsNotConstructed)
}

// Phone returns the phone fragment being matched.
func (q FindOrdersByPhoneQuery) Phone() string {
	return q.phone
}
