package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrGetOrderByIDQueryIsNotConstructed = errors.New(
		"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
	)
)

// GetOrderByIDQuery retrieves a single order by its identifier.
//
// Example:
//
//	id, _ := kernel.OrderIDFromString(raw)
//	query, err := NewGetOrderByIDQuery(id)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
type GetOrderByIDQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for the given order identifier.
func NewGetOrderByIDQuery(orderID kernel.OrderID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderByIDQuery) OrderID() kernel.OrderID {
	return q.orderID
}
