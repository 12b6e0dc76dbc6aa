// Package orderrepo provides the DynamoDB-backed OrderRepository adapter.
// It maps the order aggregate to a single-table item keyed by orderId and
// implements optimistic concurrency with a conditional write on the version
// attribute.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// Attribute names follow the stored item layout: the partition key is
// orderId and version carries the optimistic-concurrency counter.
const (
	attrOrderID = "orderId"
	attrVersion = "version"
	attrStatus  = "status"
)

// OrderDTO is the stored item shape for an order.
type OrderDTO struct {
	OrderID     string     `dynamodbav:"orderId"`
	Version     int64      `dynamodbav:"version"`
	CustomerID  string     `dynamodbav:"customerId"`
	Address     string     `dynamodbav:"address"`
	OrderDate   time.Time  `dynamodbav:"orderDate"`
	OrderUpdate *time.Time `dynamodbav:"orderUpdate,omitempty"`
	Items       []ItemDTO  `dynamodbav:"items"`
	Status      string     `dynamodbav:"status"`
}

// ItemDTO is the stored shape of one order line.
type ItemDTO struct {
	ProductID string  `dynamodbav:"productId"`
	Quantity  int     `dynamodbav:"quantity"`
	Price     float64 `dynamodbav:"price"`
}

// fromDomain converts an order aggregate to its stored representation.
// The version is carried as loaded; callers adjust it for the write.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}

	var orderUpdate *time.Time
	if u := aggregate.OrderUpdate(); !u.IsZero() {
		orderUpdate = &u
	}

	return OrderDTO{
		OrderID:     aggregate.ID().String(),
		Version:     aggregate.Version(),
		CustomerID:  aggregate.CustomerID(),
		Address:     aggregate.Address(),
		OrderDate:   aggregate.OrderDate(),
		OrderUpdate: orderUpdate,
		Items:       itemDTOs,
		Status:      aggregate.Status().String(),
	}
}

// toDomain converts a stored item to an order aggregate, rejecting rows
// with an invalid identifier or status name.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.NewItem(item.ProductID, item.Quantity, item.Price))
	}

	var orderUpdate time.Time
	if dto.OrderUpdate != nil {
		orderUpdate = *dto.OrderUpdate
	}

	return order.RestoreOrder(
		id,
		dto.CustomerID,
		dto.Address,
		dto.OrderDate,
		orderUpdate,
		items,
		status,
		dto.Version,
	)
}
