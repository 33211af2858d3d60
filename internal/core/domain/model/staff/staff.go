// Package staff implements the warehouse staff account entity used for
// authentication and audit attribution. Password hashing happens in the
// application layer; the entity only carries the resulting hash.
package staff

import (
	"errors"
	"time"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/pkg/errs"
)

// ErrStaffIsNotConstructed is returned when a Staff instance was not created
// through NewStaff or RestoreStaff.
var ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff constructor")

// Staff represents a warehouse staff account. The account's email is the
// login identifier and is unique; the name is what operations attribute as
// the actor on audit events.
type Staff struct {
	// id is the unique identifier for the account
	id kernel.UUID

	// name is the display name used as audit actor
	name string

	// email is the unique login identifier
	email string

	// passwordHash is the bcrypt hash of the account password
	passwordHash string

	// role determines administrative capabilities
	role Role

	// active accounts may log in; deactivated ones may not
	active bool

	// createdAt is the account creation timestamp
	createdAt time.Time

	// isConstructed ensures the account was created via a constructor
	isConstructed bool
}

// NewStaff creates an active staff account. Name, email, and password hash
// are required; the role defaults to Operator when unset.
func NewStaff(id kernel.UUID, name, email, passwordHash string, role Role, createdAt time.Time) (*Staff, error) {
	if role == RoleUnknown {
		role = RoleOperator
	}

	s := &Staff{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setEmail(email),
		s.setPasswordHash(passwordHash),
		s.setRole(role),
		s.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStaff reconstructs a staff account from persistent storage.
func RestoreStaff(
	id kernel.UUID,
	name, email, passwordHash string,
	role Role,
	active bool,
	createdAt time.Time,
) (*Staff, error) {
	s, err := NewStaff(id, name, email, passwordHash, role, createdAt)
	if err != nil {
		return nil, err
	}

	s.active = active
	return s, nil
}

// Validate ensures the Staff instance was properly constructed.
func (s *Staff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStaffIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (s *Staff) ID() kernel.UUID {
	return s.id
}

// Name returns the display name used as audit actor.
func (s *Staff) Name() string {
	return s.name
}

// Email returns the unique login identifier.
func (s *Staff) Email() string {
	return s.email
}

// PasswordHash returns the bcrypt hash of the account password.
func (s *Staff) PasswordHash() string {
	return s.passwordHash
}

// Role returns the account role.
func (s *Staff) Role() Role {
	return s.role
}

// Active reports whether the account may log in.
func (s *Staff) Active() bool {
	return s.active
}

// CreatedAt returns the account creation timestamp.
func (s *Staff) CreatedAt() time.Time {
	return s.createdAt
}

// IsAdmin reports whether the account has administrative capabilities.
func (s *Staff) IsAdmin() bool {
	return s.role == RoleAdmin
}

// Deactivate blocks the account from logging in. Idempotent.
func (s *Staff) Deactivate() {
	s.active = false
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Staff) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("staff name")
	}
	s.name = name
	return nil
}

func (s *Staff) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("staff email")
	}
	s.email = email
	return nil
}

func (s *Staff) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("staff password hash")
	}
	s.passwordHash = passwordHash
	return nil
}

func (s *Staff) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}

func (s *Staff) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("staff creation timestamp")
	}
	s.createdAt = createdAt
	return nil
}
