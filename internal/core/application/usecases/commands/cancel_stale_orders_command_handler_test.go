package commands_test

import (
	"testing"
	"time"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/domain/model/actor"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStaleSweepCommand(t *testing.T) (commands.CancelStaleOrdersCommand, *actor.Actor) {
	t.Helper()
	owner, err := actor.NewActor(kernel.NewUUID(), "Zanele Khumalo", "owner@swiftdrop.co.za", actor.RoleOwner)
	require.NoError(t, err)
	cmd, err := commands.NewCancelStaleOrdersCommand(30*time.Minute, owner)
	require.NoError(t, err)
	return cmd, owner
}

func TestCancelStaleOrdersCommandHandler_Handle_CancelsAllStale(t *testing.T) {
	ctx := t.Context()
	cmd, _ := newStaleSweepCommand(t)

	stale1 := newPendingOrder(t, kernel.NewUUID(), kernel.NewUUID())
	stale2 := newPendingOrder(t, kernel.NewUUID(), kernel.NewUUID())

	listRepo := new(MockOrderRepository)
	listRepo.On("GetAllPendingBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{stale1, stale2}, nil).Once()
	listUow := new(MockOrderUoW)
	listUow.On("OrderRepository").Return(listRepo).Once()

	repo1 := new(MockOrderRepository)
	uow1 := new(MockOrderUoW)
	mock.InOrder(
		uow1.On("Begin", ctx).Return(nil).Once(),
		repo1.On("Update", mock.Anything, stale1).Return(nil).Once(),
		uow1.On("Commit", ctx).Return(nil).Once(),
		uow1.On("Rollback", ctx).Return(nil).Once(),
	)
	uow1.On("OrderRepository").Return(repo1).Once()

	repo2 := new(MockOrderRepository)
	uow2 := new(MockOrderUoW)
	mock.InOrder(
		uow2.On("Begin", ctx).Return(nil).Once(),
		repo2.On("Update", mock.Anything, stale2).Return(nil).Once(),
		uow2.On("Commit", ctx).Return(nil).Once(),
		uow2.On("Rollback", ctx).Return(nil).Once(),
	)
	uow2.On("OrderRepository").Return(repo2).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUow).Once()
	factory.On("Create").Return(uow1).Once()
	factory.On("Create").Return(uow2).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 2, cancelled)
	require.Equal(t, order.StatusCancelled, stale1.Status())
	require.Equal(t, order.StatusCancelled, stale2.Status())
	factory.AssertExpectations(t)
	uow1.AssertExpectations(t)
	uow2.AssertExpectations(t)
}

func TestCancelStaleOrdersCommandHandler_Handle_SkipsContestedOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := newStaleSweepCommand(t)

	contested := newPendingOrder(t, kernel.NewUUID(), kernel.NewUUID())
	stale := newPendingOrder(t, kernel.NewUUID(), kernel.NewUUID())

	listRepo := new(MockOrderRepository)
	listRepo.On("GetAllPendingBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{contested, stale}, nil).Once()
	listUow := new(MockOrderUoW)
	listUow.On("OrderRepository").Return(listRepo).Once()

	// The contested write loses the version race and is skipped.
	conflictRepo := new(MockOrderRepository)
	conflictUow := new(MockOrderUoW)
	mock.InOrder(
		conflictUow.On("Begin", ctx).Return(nil).Once(),
		conflictRepo.On("Update", mock.Anything, contested).
			Return(errs.NewVersionConflictError(contested.ID().String(), 0, 1)).Once(),
		conflictUow.On("Rollback", ctx).Return(nil).Once(),
	)
	conflictUow.On("OrderRepository").Return(conflictRepo).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Update", mock.Anything, stale).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(repo).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUow).Once()
	factory.On("Create").Return(conflictUow).Once()
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 1, cancelled)
	require.Equal(t, order.StatusCancelled, stale.Status())
	factory.AssertExpectations(t)
}

func TestCancelStaleOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	cmd, _ := newStaleSweepCommand(t)

	listRepo := new(MockOrderRepository)
	listRepo.On("GetAllPendingBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{}, nil).Once()
	listUow := new(MockOrderUoW)
	listUow.On("OrderRepository").Return(listRepo).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUow).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Zero(t, cancelled)
	factory.AssertExpectations(t)
}

func TestCancelStaleOrdersCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewCancelStaleOrdersCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.CancelStaleOrdersCommand{})

	require.ErrorIs(t, err, commands.ErrCancelStaleOrdersCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
