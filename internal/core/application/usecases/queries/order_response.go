// Package queries contains read-side operations of the application core.
// Queries are constructor-guarded value objects; handlers resolve them
// against the order repository port and map aggregates into flat response
// structs for the inbound adapters.
package queries

import (
	"time"

	"orders/internal/core/domain/model/order"
)

// OrderResponse is the read model for a single order, flattened for the
// inbound adapters.
type OrderResponse struct {
	ID          string
	Version     int64
	CustomerID  string
	Address     string
	OrderDate   time.Time
	OrderUpdate time.Time
	Items       []OrderItemResponse
	Status      string
}

// OrderItemResponse is the read model for one order line.
type OrderItemResponse struct {
	ProductID string
	Quantity  int
	Price     float64
}

func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	items := aggregate.Items()
	itemResponses := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, OrderItemResponse{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}

	return OrderResponse{
		ID:          aggregate.ID().String(),
		Version:     aggregate.Version(),
		CustomerID:  aggregate.CustomerID(),
		Address:     aggregate.Address(),
		OrderDate:   aggregate.OrderDate(),
		OrderUpdate: aggregate.OrderUpdate(),
		Items:       itemResponses,
		Status:      aggregate.Status().String(),
	}
}
