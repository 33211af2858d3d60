package commands_test

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"pickuphub/internal/core/application/usecases/commands"
	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/staff"
	"pickuphub/internal/pkg/clock"
	"pickuphub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingStaff(t *testing.T, email string) *staff.Staff {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	account, err := staff.NewStaff(kernel.NewUUID(), "Ana Lima", email, string(hash), staff.RoleOperator, fixedNow)
	require.NoError(t, err)
	return account
}

func TestRegisterStaffCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterStaffCommand("Ana Lima", "ana@example.com", "s3cret", staff.RoleOperator)
	require.NoError(t, err)

	repo := new(MockStaffRepository)
	uow := new(MockStaffUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ana@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "ana@example.com")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*staff.Staff")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterStaffCommandHandler(factory, clock.NewFixed(fixedNow))
	account, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", account.Email())
	assert.Equal(t, staff.RoleOperator, account.Role())
	assert.True(t, account.Active())
	assert.Equal(t, fixedNow, account.CreatedAt())

	// The stored value is a bcrypt hash of the password, never the password.
	assert.NotEqual(t, "s3cret", account.PasswordHash())
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash()), []byte("s3cret")))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterStaffCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterStaffCommand("Ana Lima", "ana@example.com", "s3cret", staff.RoleOperator)
	require.NoError(t, err)

	repo := new(MockStaffRepository)
	uow := new(MockStaffUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ana@example.com").
			Return(existingStaff(t, "ana@example.com"), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterStaffCommandHandler(factory, clock.NewFixed(fixedNow))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterStaffCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.RegisterStaffCommand
	factory := new(MockStaffUoWFactory)
	h := commands.NewRegisterStaffCommandHandler(factory, clock.NewFixed(fixedNow))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrRegisterStaffCommandIsNotConstructed)
}
