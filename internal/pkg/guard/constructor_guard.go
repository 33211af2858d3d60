// Package guard provides a defensive programming primitive that ensures
// value objects, commands, and queries are only created through their
// designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// an unconstructed guard, so any struct that embeds a ConstructorGuard and is
// created as a zero value fails validation.
//
// Example:
//
//	type SearchOrdersQuery struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSearchOrdersQuery() SearchOrdersQuery {
//	    return SearchOrdersQuery{guard: guard.NewConstructorGuard()}
//	}
//
//	func (q SearchOrdersQuery) Validate() error {
//	    return q.guard.Validate(ErrQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was properly constructed. Otherwise it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
