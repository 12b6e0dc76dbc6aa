package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending --> Registered
//
// Pending exists only in memory: the order factory creates orders as Pending
// and the repository adapter transitions them to Registered before the actual
// write. A persisted order is therefore always Registered, and callers never
// observe Pending. Registered is the observable contract.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the transient status assigned by the order factory.
	// It is never persisted.
	Pending

	// Registered is the status of every stored order.
	Registered
)

const (
	pendingName    = "PENDING"
	registeredName = "REGISTERED"
)

// Validate checks if the Status value is valid.
// Valid statuses are Pending and Registered; Unknown and any other value fail.
func (s Status) Validate() error {
	if s != Pending && s != Registered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status: "PENDING" or "REGISTERED".
// Invalid values render as "UNKNOWN".
func (s Status) String() string {
	switch s {
	case Pending:
		return pendingName
	case Registered:
		return registeredName
	default:
		return "UNKNOWN"
	}
}

// StatusFromString parses a persisted status name.
// Returns an error for any name other than "PENDING" or "REGISTERED".
func StatusFromString(name string) (Status, error) {
	switch name {
	case pendingName:
		return Pending, nil
	case registeredName:
		return Registered, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid status name", name),
		)
	}
}

// Register transitions the status to Registered.
//
// Valid transitions:
//   - Pending -> Registered (performed by the repository adapter before the write)
//   - Registered -> Registered (re-registering is a no-op)
//
// Returns the new status, or an error when the current status is invalid.
func (s Status) Register() (Status, error) {
	if s != Pending && s != Registered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to register", s.String()),
		)
	}
	return Registered, nil
}
