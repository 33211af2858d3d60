package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"pickuphub/internal/core/domain/model/staff"
	"pickuphub/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for any login failure. Unknown email,
// wrong password and deactivated account are indistinguishable to the
// caller so the response does not leak which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateStaffCommandHandler verifies staff logins.
type AuthenticateStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewAuthenticateStaffCommandHandler creates a handler for staff login.
func NewAuthenticateStaffCommandHandler(uowFactory StaffUoWFactory) AuthenticateStaffCommandHandler {
	return AuthenticateStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle compares the password candidate against the stored bcrypt hash and
// returns the account on success. Every failure mode yields
// ErrInvalidCredentials.
func (h *AuthenticateStaffCommandHandler) Handle(ctx context.Context, cmd AuthenticateStaffCommand) (*staff.Staff, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.StaffRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.Active() {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash()), []byte(cmd.Password())) != nil {
		return nil, ErrInvalidCredentials
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return account, nil
}
