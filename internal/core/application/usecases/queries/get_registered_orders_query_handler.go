package queries

import (
	"context"

	"orders/internal/core/ports"
)

// registeredOrdersLimit caps the items examined by the underlying scan.
// The store applies the cap before the status filter, so the response may
// hold fewer than this many orders even when more registered rows exist.
const registeredOrdersLimit = 10

// GetRegisteredOrdersQueryHandler lists registered orders through the
// repository port. The result is unordered and an empty listing is a
// success, never an error.
type GetRegisteredOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetRegisteredOrdersQueryHandler creates a handler for the registered-orders listing.
func NewGetRegisteredOrdersQueryHandler(orderRepository ports.OrderRepository) GetRegisteredOrdersQueryHandler {
	return GetRegisteredOrdersQueryHandler{orderRepository: orderRepository}
}

// Handle executes the bounded scan and maps aggregates to their read models.
func (h GetRegisteredOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRegisteredOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.orderRepository.GetAllRegistered(ctx, registeredOrdersLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, orderResponseFromAggregate(aggregate))
	}

	return responses, nil
}
