package commands

import (
	"errors"

	"pickuphub/internal/core/domain/model/staff"
	"pickuphub/internal/pkg/errs"
	"pickuphub/internal/pkg/guard"
)

var ErrRegisterStaffCommandIsNotConstructed = errors.New(
	"RegisterStaffCommand must be created via NewRegisterStaffCommand constructor",
)

// RegisterStaffCommand creates a warehouse staff account.
type RegisterStaffCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string
	role     staff.Role

	guard guard.ConstructorGuard
}

// NewRegisterStaffCommand creates a command to register a staff account.
// Name, email and password are required; an unknown role defaults to
// operator.
func NewRegisterStaffCommand(name, email, password string, role staff.Role) (RegisterStaffCommand, error) {
	cmd := RegisterStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterStaffCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterStaffCommand) Validate() error {
	return c.guard.Validate(ErrRegisterStaffCommandIsNotConstructed)
}

// Name returns the display name of the account.
func (c RegisterStaffCommand) Name() string {
	return c.name
}

// Email returns the login email, which must be unique.
func (c RegisterStaffCommand) Email() string {
	return c.email
}

// Password returns the plaintext password. It is hashed by the handler and
// never persisted as-is.
func (c RegisterStaffCommand) Password() string {
	return c.password
}

// Role returns the requested role.
func (c RegisterStaffCommand) Role() staff.Role {
	return c.role
}

func (c *RegisterStaffCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterStaffCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterStaffCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

func (c *RegisterStaffCommand) setRole(role staff.Role) error {
	if role == staff.RoleUnknown {
		c.role = staff.RoleOperator
		return nil
	}
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
