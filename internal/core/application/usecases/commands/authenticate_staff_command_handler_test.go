package commands_test

import (
	"testing"

	"pickuphub/internal/core/application/usecases/commands"
	"pickuphub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateStaffCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	account := existingStaff(t, "ana@example.com")
	cmd, err := commands.NewAuthenticateStaffCommand("ana@example.com", "s3cret")
	require.NoError(t, err)

	repo := new(MockStaffRepository)
	uow := new(MockStaffUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(account, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAuthenticateStaffCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, account.ID(), result.ID())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAuthenticateStaffCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	account := existingStaff(t, "ana@example.com")
	cmd, err := commands.NewAuthenticateStaffCommand("ana@example.com", "wrong")
	require.NoError(t, err)

	repo := new(MockStaffRepository)
	uow := new(MockStaffUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(account, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAuthenticateStaffCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrInvalidCredentials)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAuthenticateStaffCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAuthenticateStaffCommand("nobody@example.com", "s3cret")
	require.NoError(t, err)

	repo := new(MockStaffRepository)
	uow := new(MockStaffUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "nobody@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "nobody@example.com")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAuthenticateStaffCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrInvalidCredentials)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAuthenticateStaffCommandHandler_Handle_DeactivatedAccount(t *testing.T) {
	ctx := t.Context()
	account := existingStaff(t, "ana@example.com")
	account.Deactivate()

	cmd, err := commands.NewAuthenticateStaffCommand("ana@example.com", "s3cret")
	require.NoError(t, err)

	repo := new(MockStaffRepository)
	uow := new(MockStaffUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(account, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAuthenticateStaffCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrInvalidCredentials)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAuthenticateStaffCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.AuthenticateStaffCommand
	factory := new(MockStaffUoWFactory)
	h := commands.NewAuthenticateStaffCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrAuthenticateStaffCommandIsNotConstructed)
}
