// Package orderrepo provides an in-memory OrderRepository used for local
// development (STORE_DRIVER=memory) and unit tests. It mirrors the DynamoDB
// adapter's contract exactly: forced Registered status on insert,
// store-owned version counter, compare-and-swap on update, and the
// examine-then-filter scan cap.
package orderrepo

import (
	"context"
	"sync"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// record is the stored shape of an order. Value copies go in and out so
// callers can never mutate the store through a returned aggregate.
type record struct {
	id          string
	customerID  string
	address     string
	orderDate   time.Time
	orderUpdate time.Time
	items       []itemRecord
	status      order.Status
	version     int64
}

type itemRecord struct {
	productID string
	quantity  int
	price     float64
}

// InMemoryOrderRepository implements ports.OrderRepository on a mutex-guarded map.
type InMemoryOrderRepository struct {
	mu    sync.RWMutex
	items map[string]record
}

// NewInMemoryOrderRepository creates an empty in-memory repository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		items: make(map[string]record),
	}
}

// Add stores a new order unconditionally. The aggregate is transitioned to
// Registered before the write and the stored version starts at 1.
func (r *InMemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.Register(); err != nil {
		return err
	}

	rec := fromAggregate(aggregate)
	rec.version = 1

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[rec.id] = rec
	return nil
}

// Update rewrites an existing order under a compare-and-swap on the version
// the aggregate was loaded with.
func (r *InMemoryOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().String()

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return errs.NewObjectNotFoundError("orderId", id)
	}
	if current.version != aggregate.Version() {
		return errs.NewVersionConflictError(id, aggregate.Version())
	}

	rec := fromAggregate(aggregate)
	rec.version = aggregate.Version() + 1
	r.items[id] = rec
	return nil
}

// Get retrieves an order by identifier; absence is a not-found error.
func (r *InMemoryOrderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	rec, ok := r.items[id.String()]
	r.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}

	return toAggregate(rec)
}

// GetAllRegistered scans up to limit records in map order (unordered) and
// filters for Registered status afterwards, matching the backing store's
// examine-then-filter semantics.
func (r *InMemoryOrderRepository) GetAllRegistered(_ context.Context, limit int) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*order.Order, 0, limit)
	examined := 0
	for _, rec := range r.items {
		if examined == limit {
			break
		}
		examined++

		if rec.status != order.Registered {
			continue
		}

		aggregate, err := toAggregate(rec)
		if err != nil {
			return nil, err
		}
		result = append(result, aggregate)
	}

	return result, nil
}

// Ping always succeeds: the in-memory store has no transport to fail.
func (r *InMemoryOrderRepository) Ping(_ context.Context) error {
	return nil
}

func fromAggregate(aggregate *order.Order) record {
	items := aggregate.Items()
	itemRecords := make([]itemRecord, 0, len(items))
	for _, item := range items {
		itemRecords = append(itemRecords, itemRecord{
			productID: item.ProductID(),
			quantity:  item.Quantity(),
			price:     item.Price(),
		})
	}

	return record{
		id:          aggregate.ID().String(),
		customerID:  aggregate.CustomerID(),
		address:     aggregate.Address(),
		orderDate:   aggregate.OrderDate(),
		orderUpdate: aggregate.OrderUpdate(),
		items:       itemRecords,
		status:      aggregate.Status(),
		version:     aggregate.Version(),
	}
}

func toAggregate(rec record) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(rec.id)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(rec.items))
	for _, item := range rec.items {
		items = append(items, order.NewItem(item.productID, item.quantity, item.price))
	}

	return order.RestoreOrder(
		id,
		rec.customerID,
		rec.address,
		rec.orderDate,
		rec.orderUpdate,
		items,
		rec.status,
		rec.version,
	)
}

var _ ports.OrderRepository = (*InMemoryOrderRepository)(nil)
