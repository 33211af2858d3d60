package staff

import (
	"fmt"

	"pickuphub/internal/pkg/errs"
)

// Role determines the capabilities of a staff account.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleOperator is the default role for counter staff.
	RoleOperator

	// RoleAdmin grants account management capabilities.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleOperator: "Operator",
		RoleAdmin:    "Admin",
	}
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r != RoleOperator && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
