package kernel

import (
	"strings"

	"orders/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not initialized
// through NewOrderID or OrderIDFromString. It is returned when validating a
// zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString")

// OrderID is a value object that identifies an order. It wraps an opaque
// server-minted identifier: a version 4 UUID rendered without separators
// (32 hex characters), so collisions are negligible and the value carries no
// internal structure clients could depend on.
//
// The zero value of OrderID is invalid and must be constructed through
// NewOrderID or OrderIDFromString.
//
// Example:
//
//	id := kernel.NewOrderID()
//	fmt.Println(id.String()) // e.g. "550e8400e29b41d4a716446655440000"
type OrderID struct {
	id string
}

// NewOrderID mints a new random order identifier.
func NewOrderID() OrderID {
	return OrderID{
		id: strings.ReplaceAll(uuid.NewString(), "-", ""),
	}
}

// OrderIDFromString wraps an identifier received from the outside, e.g. a
// path parameter. Lookups must accept any non-empty identifier: an unknown
// id is a not-found condition at the store, not a parse error here.
func OrderIDFromString(s string) (OrderID, error) {
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}
	return OrderID{id: s}, nil
}

// String returns the identifier's textual form.
func (o OrderID) String() string {
	return o.id
}

// IsEqual compares two order identifiers for equality.
func (o OrderID) IsEqual(other OrderID) bool {
	return o.id == other.id
}

// Validate checks that the OrderID was properly constructed.
// Returns ErrOrderIDIsNotConstructed for zero values.
func (o OrderID) Validate() error {
	if o.id == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
