package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/staff"
	"pickuphub/internal/pkg/clock"
	"pickuphub/internal/pkg/errs"
)

// RegisterStaffCommandHandler creates staff accounts with bcrypt-hashed
// passwords.
type RegisterStaffCommandHandler struct {
	uowFactory StaffUoWFactory
	clock      clock.Clock
}

// NewRegisterStaffCommandHandler creates a handler for staff registration.
func NewRegisterStaffCommandHandler(uowFactory StaffUoWFactory, clk clock.Clock) RegisterStaffCommandHandler {
	return RegisterStaffCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle hashes the password, rejects duplicate emails, and persists the
// account.
func (h *RegisterStaffCommandHandler) Handle(ctx context.Context, cmd RegisterStaffCommand) (*staff.Staff, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staffRepo := uow.StaffRepository()

	if _, lookupErr := staffRepo.GetByEmail(ctx, cmd.Email()); lookupErr == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("email", errors.New("email is already registered"))
	} else if !errors.Is(lookupErr, errs.ErrObjectNotFound) {
		return nil, lookupErr
	}

	aggregate, err := staff.NewStaff(kernel.NewUUID(), cmd.Name(), cmd.Email(), string(hash), cmd.Role(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = staffRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
