package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a request to partially update an existing
// order. Customer and address are optional: a nil pointer means "leave this
// field unchanged". The empty string also means "no change": an update
// cannot clear a field to empty.
//
// Example:
//
//	address := "456 Oak Ave"
//	cmd, err := NewUpdateOrderCommand(id, nil, &address)
//	if err != nil {
//	    return err
//	}
//	updated, err := NewUpdateOrderCommandHandler(repo).Handle(ctx, cmd)
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.OrderID
	customerID *string
	address    *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
// Only the target identifier is mandatory; patch values are copied, so the
// command does not alias caller memory.
func NewUpdateOrderCommand(orderID kernel.OrderID, customerID, address *string) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}

	if customerID != nil {
		v := *customerID
		cmd.customerID = &v
	}
	if address != nil {
		v := *address
		cmd.address = &v
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// CustomerID returns the replacement customer, or nil for "no change".
func (c UpdateOrderCommand) CustomerID() *string {
	return c.customerID
}

// Address returns the replacement address, or nil for "no change".
func (c UpdateOrderCommand) Address() *string {
	return c.address
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
