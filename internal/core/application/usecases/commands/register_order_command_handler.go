package commands

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// RegisterOrderCommandHandler handles the business logic for order
// registration: mint the identifier, build the aggregate, and write it
// unconditionally through the repository port. The repository transitions
// the order to Registered before the write, so the returned aggregate
// always carries the effective persisted status.
type RegisterOrderCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewRegisterOrderCommandHandler creates a handler for order registration.
func NewRegisterOrderCommandHandler(orderRepository ports.OrderRepository) RegisterOrderCommandHandler {
	return RegisterOrderCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the registration command. Exactly one new row is written;
// a store failure propagates unchanged, with no retry at this layer.
//
// Returns the stored aggregate including the minted identifier and the
// Registered status.
func (h RegisterOrderCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(kernel.NewOrderID(), cmd.CustomerID(), cmd.Address(), cmd.Items())
	if err != nil {
		return nil, err
	}

	if err = h.orderRepository.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
