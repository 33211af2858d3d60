package commands

import (
	"errors"

	"pickuphub/internal/pkg/errs"
	"pickuphub/internal/pkg/guard"
)

var ErrAuthenticateStaffCommandIsNotConstructed = errors.New(
	"AuthenticateStaffCommand must be created via NewAuthenticateStaffCommand constructor",
)

// AuthenticateStaffCommand checks a staff login against the stored
// credentials.
type AuthenticateStaffCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateStaffCommand creates a login command.
func NewAuthenticateStaffCommand(email, password string) (AuthenticateStaffCommand, error) {
	cmd := AuthenticateStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return AuthenticateStaffCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AuthenticateStaffCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateStaffCommandIsNotConstructed)
}

// Email returns the login email.
func (c AuthenticateStaffCommand) Email() string {
	return c.email
}

// Password returns the plaintext password candidate.
func (c AuthenticateStaffCommand) Password() string {
	return c.password
}

func (c *AuthenticateStaffCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *AuthenticateStaffCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
