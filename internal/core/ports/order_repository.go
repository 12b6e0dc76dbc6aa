// Package ports defines the outbound contracts of the application core.
// Adapters implement these interfaces; the core depends only on the
// abstractions.
package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the key-value persistence contract for order
// aggregates. The unit of atomicity is a single call; there is no
// transaction spanning multiple operations.
//
// Error classification (via errors.Is against internal/pkg/errs sentinels):
//   - ErrObjectNotFound: the referenced order does not exist
//   - ErrVersionConflict: a conditional write lost against a concurrent writer
//   - ErrStoreUnavailable: the store is unreachable or rejected the operation
type OrderRepository interface {
	// Add persists a new order aggregate with an unconditional write.
	// The adapter transitions the aggregate to Registered status before the
	// write, so the persisted and returned status is always Registered, and
	// the stored version starts at 1.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate with a
	// compare-and-swap on the version the aggregate was loaded with.
	// On success the stored version is the loaded version plus one.
	// Fails with a not-found error when the target vanished, and with a
	// version-conflict error when a concurrent writer got there first.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// An absent order is reported as a not-found error, distinct from
	// transport failures.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAllRegistered retrieves orders in Registered status via an
	// unordered, unindexed scan. The limit caps the items examined before
	// the status filter is applied, so fewer matches than limit may return
	// even when more exist.
	GetAllRegistered(ctx context.Context, limit int) ([]*order.Order, error)
}
