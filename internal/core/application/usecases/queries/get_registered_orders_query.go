package queries

import (
	"errors"

	"orders/internal/pkg/guard"
)

var (
	ErrGetRegisteredOrdersQueryIsNotConstructed = errors.New(
		"GetRegisteredOrdersQuery must be created via NewGetRegisteredOrdersQuery constructor",
	)
)

// GetRegisteredOrdersQuery retrieves registered orders, capped at a fixed
// small limit. This is a parameterless query: the cap is a property of the
// endpoint, not a caller choice (pagination is out of scope).
type GetRegisteredOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRegisteredOrdersQuery creates a query for the registered-orders listing.
func NewGetRegisteredOrdersQuery() GetRegisteredOrdersQuery {
	return GetRegisteredOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRegisteredOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRegisteredOrdersQueryIsNotConstructed)
}
