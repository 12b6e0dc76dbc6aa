package queries

import (
	"context"

	"orders/internal/core/ports"
)

// GetOrderByIDQueryHandler resolves a single order through the repository
// port. An absent order propagates as a not-found error; the boundary turns
// it into a 404, never a 500.
type GetOrderByIDQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrderByIDQueryHandler creates a handler for point lookups.
func NewGetOrderByIDQueryHandler(orderRepository ports.OrderRepository) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{orderRepository: orderRepository}
}

// Handle executes the lookup and maps the aggregate to its read model.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return orderResponseFromAggregate(aggregate), nil
}
