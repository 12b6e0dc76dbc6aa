package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer order. It is the aggregate root that manages
// the order data from creation through partial updates.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, never reused
//   - Must have a non-empty customer and address at creation
//   - Must carry at least one item, frozen at creation
//   - The creation timestamp is set once and never overwritten
//   - The version is owned by the store: 0 until persisted, then incremented
//     on every successful write
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order (partition key in storage)
	id kernel.OrderID

	// customerID identifies the ordering customer
	customerID string

	// address is the delivery address
	address string

	// orderDate is set at creation and never overwritten
	orderDate time.Time

	// orderUpdate is zero until the first update, refreshed on each
	orderUpdate time.Time

	// items is the frozen list of order lines
	items []Item

	// status is Pending in memory, Registered once persisted
	status Status

	// version is the optimistic-concurrency counter managed by the store
	version int64

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with a freshly minted creation timestamp and
// Pending status. This is the factory used by the registration flow; the
// repository adapter transitions the order to Registered before the write.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the ordering customer, must be non-empty
//   - address: the delivery address, must be non-empty
//   - items: the order lines, must be non-empty
//
// Returns the created order, or a validation error if any parameter is
// invalid.
func NewOrder(id kernel.OrderID, customerID, address string, items []Item) (*Order, error) {
	order := &Order{
		status:        Pending,
		orderDate:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setAddress(address),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. It accepts the full
// stored state including timestamps, status, and version, and validates the
// identifier and status so corrupt rows are rejected at the adapter boundary.
func RestoreOrder(
	id kernel.OrderID,
	customerID string,
	address string,
	orderDate time.Time,
	orderUpdate time.Time,
	items []Item,
	status Status,
	version int64,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		address:       address,
		orderDate:     orderDate,
		orderUpdate:   orderUpdate,
		items:         append([]Item(nil), items...),
		status:        status,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value or hand-built structs.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// OrderDate returns the creation timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// OrderUpdate returns the timestamp of the most recent update.
// The zero time means the order has never been updated.
func (o *Order) OrderUpdate() time.Time {
	return o.orderUpdate
}

// Items returns a copy of the order lines. The list is frozen at creation;
// callers cannot mutate the aggregate through the returned slice.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the optimistic-concurrency version as loaded from the
// store. Zero means the order has not been persisted yet.
func (o *Order) Version() int64 {
	return o.version
}

// Register transitions the order to Registered status. The repository
// adapter calls this immediately before the actual write, so the persisted
// and returned status is always Registered.
func (o *Order) Register() error {
	newStatus, err := o.status.Register()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Amend applies a partial update to the order and refreshes the update
// timestamp.
//
// Merge rules, applied field by field:
//   - customerID is replaced iff the patch value is non-nil and non-empty
//   - address is replaced iff the patch value is non-nil and non-empty
//   - orderDate, items, status, and version are never touched
//
// A nil pointer and an empty string both mean "leave this field unchanged";
// a field cannot be cleared to empty through an update.
func (o *Order) Amend(customerID, address *string, now time.Time) {
	if customerID != nil && *customerID != "" {
		o.customerID = *customerID
	}
	if address != nil && *address != "" {
		o.address = *address
	}
	o.orderUpdate = now
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the ordering customer.
func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}

// setAddress validates and sets the delivery address.
func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

// setItems validates and sets the order lines.
// The list must be non-empty; item fields themselves are not range-checked.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = append([]Item(nil), items...)
	return nil
}
