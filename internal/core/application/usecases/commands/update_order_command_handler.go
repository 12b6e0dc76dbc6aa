package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// UpdateOrderCommandHandler handles the read-modify-write protocol for
// partial order updates:
//
//  1. Load the current aggregate; an absent target is a not-found error and
//     an update never creates a new order.
//  2. Merge: replace customer/address only with non-empty patch values,
//     refresh the update timestamp, keep everything else as loaded.
//  3. Write back with a compare-and-swap on the loaded version. A target
//     that vanished between steps surfaces as not-found; a concurrent
//     writer surfaces as a version conflict rather than being silently
//     overwritten.
//
// The read-merge-write sequence is not atomic as a whole; the version
// condition on the final write is what protects against lost updates.
type UpdateOrderCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewUpdateOrderCommandHandler creates a handler for partial order updates.
func NewUpdateOrderCommandHandler(orderRepository ports.OrderRepository) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the update command and returns the merged aggregate as
// written. Exactly one row is rewritten on success and the stored version
// advances by one.
func (h UpdateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	current.Amend(cmd.CustomerID(), cmd.Address(), time.Now().UTC())

	if err = h.orderRepository.Update(ctx, current); err != nil {
		return nil, err
	}

	return current, nil
}
