package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/clock"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDriverCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewCreateDriverCommand(kernel.UUID{}, "Alice", "alice@example.com", "555", kernel.UUID{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), "Alice", "alice@example.com", "+1 555 0100", kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	d, err := commands.NewCreateDriverCommandHandler(factory, clock.NewFixed(fixedNow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, cmd.DriverID(), d.ID())
	assert.Equal(t, "alice@example.com", d.Email())
	assert.Equal(t, fixedNow, d.CreatedAt())
	uow.AssertExpectations(t)
}

func TestCreateDriverCommandHandler_Handle_InvalidEmailIsRejectedBeforeTransaction(t *testing.T) {
	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), "Alice", "not-an-email", "+1 555 0100", kernel.NewUUID())
	require.NoError(t, err)
	factory := new(MockDriverUoWFactory)

	_, err = commands.NewCreateDriverCommandHandler(factory, clock.NewFixed(fixedNow)).Handle(t.Context(), cmd)

	require.True(t, errs.IsValidation(err))
	factory.AssertNotCalled(t, "Create")
}

func TestCreateDriverCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), "Alice", "alice@example.com", "+1 555 0100", kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockDriverRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Add", ctx, mock.Anything).Return(errs.NewValueIsInvalidErrorWithCause("email", errors.New("already registered"))).Once()
	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewCreateDriverCommandHandler(factory, clock.NewFixed(fixedNow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", ctx)
}
