package commands_test

import (
	"context"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllRegistered(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func testItems() []order.Item {
	return []order.Item{order.NewItem("prod-1", 2, 9.99)}
}

func TestRegisterOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterOrderCommand("cust-1", "742 Evergreen Terrace", testItems())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	handler := commands.NewRegisterOrderCommandHandler(repo)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "cust-1", created.CustomerID())
	assert.Equal(t, "742 Evergreen Terrace", created.Address())
	assert.Len(t, created.ID().String(), 32)
	assert.Len(t, created.Items(), 1)
	repo.AssertExpectations(t)
}

func TestRegisterOrderCommandHandler_Handle_GeneratesDistinctIDs(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterOrderCommand("cust-1", "somewhere", testItems())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Twice()

	handler := commands.NewRegisterOrderCommandHandler(repo)
	first, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	second, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID().String(), second.ID().String())
}

func TestRegisterOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterOrderCommand{} // not constructed properly

	repo := new(MockOrderRepository)
	handler := commands.NewRegisterOrderCommandHandler(repo)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterOrderCommandIsNotConstructed)
	repo.AssertNotCalled(t, "Add")
}

func TestRegisterOrderCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterOrderCommand("cust-1", "somewhere", testItems())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Return(errs.NewStoreUnavailableError("PutItem")).Once()

	handler := commands.NewRegisterOrderCommandHandler(repo)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	assert.Nil(t, created)
}
