// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: each command is a
// constructor-guarded value object, and each handler validates the command,
// orchestrates the domain model, and talks to the order repository port.
// Handlers never retry; retry policy belongs to the store client or caller.
package commands

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrRegisterOrderCommandIsNotConstructed = errors.New(
		"RegisterOrderCommand must be created via NewRegisterOrderCommand constructor",
	)
)

// RegisterOrderCommand represents a request to register a new order.
// Carries the customer, delivery address, and the order lines; the order
// identifier is minted by the handler, never supplied by the caller.
//
// Example:
//
//	items := []order.Item{order.NewItem("P1", 2, 9.99)}
//	cmd, err := NewRegisterOrderCommand("Test", "123 Main St", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewRegisterOrderCommandHandler(repo)
//	created, err := handler.Handle(ctx, cmd)
type RegisterOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	address    string
	items      []order.Item

	guard guard.ConstructorGuard
}

// NewRegisterOrderCommand creates a command to register a new order.
// Validates that customer and address are non-empty and that at least one
// item is present. Item quantities and prices are accepted as-is.
func NewRegisterOrderCommand(customerID, address string, items []order.Item) (RegisterOrderCommand, error) {
	cmd := RegisterOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setAddress(address),
		cmd.setItems(items),
	); err != nil {
		return RegisterOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterOrderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c RegisterOrderCommand) CustomerID() string {
	return c.customerID
}

// Address returns the delivery address.
func (c RegisterOrderCommand) Address() string {
	return c.address
}

// Items returns a copy of the order lines.
func (c RegisterOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

func (c *RegisterOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}

	c.customerID = customerID
	return nil
}

func (c *RegisterOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *RegisterOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = append([]order.Item(nil), items...)
	return nil
}
