package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"
)

// RegisterOrderRequest is the POST /orders body.
type RegisterOrderRequest struct {
	Customer string             `json:"customer" validate:"required"`
	Address  string             `json:"address"  validate:"required"`
	Items    []OrderItemRequest `json:"items"    validate:"required,min=1,dive"`
}

// OrderItemRequest is one order line in a registration request.
type OrderItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// UpdateOrderRequest is the PUT /orders body. Customer and address are
// optional; an absent or empty field leaves the stored value unchanged.
type UpdateOrderRequest struct {
	ID       string  `json:"id" validate:"required"`
	Customer *string `json:"customer"`
	Address  *string `json:"address"`
}

// MutationResponse acknowledges a successful register or update.
type MutationResponse struct {
	ID       string `json:"id"`
	Creation string `json:"creation"`
	Status   string `json:"status"`
}

// OrderJSON is the full order representation returned by the read endpoints.
type OrderJSON struct {
	OrderID     string          `json:"orderId"`
	Version     int64           `json:"version"`
	CustomerID  string          `json:"customerId"`
	Address     string          `json:"address"`
	OrderDate   time.Time       `json:"orderDate"`
	OrderUpdate *time.Time      `json:"orderUpdate,omitempty"`
	Items       []OrderItemJSON `json:"items"`
	Status      string          `json:"status"`
}

// OrderItemJSON is one order line in a read response.
type OrderItemJSON struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Error is the body of non-validation error responses.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func orderJSONFromResponse(response queries.OrderResponse) OrderJSON {
	items := make([]OrderItemJSON, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, OrderItemJSON{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	var orderUpdate *time.Time
	if !response.OrderUpdate.IsZero() {
		updatedAt := response.OrderUpdate
		orderUpdate = &updatedAt
	}

	return OrderJSON{
		OrderID:     response.ID,
		Version:     response.Version,
		CustomerID:  response.CustomerID,
		Address:     response.Address,
		OrderDate:   response.OrderDate,
		OrderUpdate: orderUpdate,
		Items:       items,
		Status:      response.Status,
	}
}
