package queries_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/core/application/usecases/queries"
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

func restoreRegisteredOrder(t *testing.T, id kernel.OrderID) *order.Order {
	t.Helper()

	stored, err := order.RestoreOrder(
		id,
		"cust-1",
		"742 Evergreen Terrace",
		time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		time.Time{},
		[]order.Item{order.NewItem("prod-1", 2, 9.99)},
		order.Registered,
		1,
	)
	require.NoError(t, err)
	return stored
}

func TestGetOrderByIDQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewOrderID()
	query, err := queries.NewGetOrderByIDQuery(orderID)
	require.NoError(t, err)

	stored := restoreRegisteredOrder(t, orderID)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, orderID).Return(stored, nil).Once()

	handler := queries.NewGetOrderByIDQueryHandler(repo)
	response, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, orderID.String(), response.ID)
	assert.Equal(t, "cust-1", response.CustomerID)
	assert.Equal(t, "742 Evergreen Terrace", response.Address)
	assert.Equal(t, int64(1), response.Version)
	assert.Equal(t, "REGISTERED", response.Status)
	require.Len(t, response.Items, 1)
	assert.Equal(t, "prod-1", response.Items[0].ProductID)
	repo.AssertExpectations(t)
}

func TestGetOrderByIDQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	query := queries.GetOrderByIDQuery{} // not constructed properly

	repo := new(MockOrderRepository)
	handler := queries.NewGetOrderByIDQueryHandler(repo)
	_, err := handler.Handle(ctx, query)

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetOrderByIDQueryIsNotConstructed)
	repo.AssertNotCalled(t, "Get")
}

func TestGetOrderByIDQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewOrderID()
	query, err := queries.NewGetOrderByIDQuery(orderID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderID", orderID.String())).Once()

	handler := queries.NewGetOrderByIDQueryHandler(repo)
	_, err = handler.Handle(ctx, query)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
