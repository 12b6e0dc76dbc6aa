// Package http exposes the order use cases over an echo HTTP API.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/metrics"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const orderNotProcessedMessage = "order not processed"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerOrderHandler commands.RegisterOrderCommandHandler
	updateOrderHandler   commands.UpdateOrderCommandHandler

	// Query handlers
	getOrderByIDHandler        queries.GetOrderByIDQueryHandler
	getRegisteredOrdersHandler queries.GetRegisteredOrdersQueryHandler

	orderMetrics *metrics.OrderMetrics
	logger       *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerOrderHandler commands.RegisterOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getRegisteredOrdersHandler queries.GetRegisteredOrdersQueryHandler,
	orderMetrics *metrics.OrderMetrics,
	logger *slog.Logger,
) *Server {
	return &Server{
		registerOrderHandler:       registerOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		getOrderByIDHandler:        getOrderByIDHandler,
		getRegisteredOrdersHandler: getRegisteredOrdersHandler,
		orderMetrics:               orderMetrics,
		logger:                     logger.With("component", "http_server"),
	}
}

// RegisterRoutes binds the order endpoints on the given echo instance and
// installs the request validator.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/orders", s.GetRegisteredOrders)
	e.GET("/orders/:id", s.GetOrderByID)
	e.POST("/orders", s.RegisterOrder)
	e.PUT("/orders", s.UpdateOrder)
}

// GetRegisteredOrders handles GET /orders - lists registered orders.
func (s *Server) GetRegisteredOrders(ctx echo.Context) error {
	started := time.Now()
	query := queries.NewGetRegisteredOrdersQuery()

	orders, err := s.getRegisteredOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.orderMetrics.OperationFailed(metrics.OpFindAll)
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to retrieve registered orders", "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderJSON, 0, len(orders))
	for _, orderResponse := range orders {
		response = append(response, orderJSONFromResponse(orderResponse))
	}

	s.orderMetrics.ObserveOperation(metrics.OpFindAll, time.Since(started))
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /orders/:id - retrieves a single order.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	started := time.Now()

	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	orderResponse, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}

		s.orderMetrics.OperationFailed(metrics.OpFindByID)
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to retrieve order", "orderId", orderID.String(), "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	s.orderMetrics.ObserveOperation(metrics.OpFindByID, time.Since(started))
	return ctx.JSON(http.StatusOK, orderJSONFromResponse(orderResponse))
}

// RegisterOrder handles POST /orders - registers a new order.
func (s *Server) RegisterOrder(ctx echo.Context) error {
	started := time.Now()

	var request RegisterOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, []FieldError{{Field: "body", Message: "is invalid"}})
	}
	if err := ctx.Validate(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, fieldErrorsFrom(err))
	}

	items := make([]order.Item, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, order.NewItem(item.ProductID, item.Quantity, item.Price))
	}

	cmd, err := commands.NewRegisterOrderCommand(request.Customer, request.Address, items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.registerOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.orderMetrics.OperationFailed(metrics.OpRegister)
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to register order", "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: orderNotProcessedMessage,
		})
	}

	s.orderMetrics.OrderRegistered()
	s.orderMetrics.ObserveOperation(metrics.OpRegister, time.Since(started))
	s.logger.InfoContext(ctx.Request().Context(), "Order registered", "orderId", created.ID().String())

	return ctx.JSON(http.StatusCreated, MutationResponse{
		ID:       created.ID().String(),
		Creation: created.OrderDate().Format(time.RFC3339),
		Status:   created.Status().String(),
	})
}

// UpdateOrder handles PUT /orders - amends an existing order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	started := time.Now()

	var request UpdateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, []FieldError{{Field: "body", Message: "is invalid"}})
	}
	if err := ctx.Validate(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, fieldErrorsFrom(err))
	}

	orderID, err := kernel.OrderIDFromString(request.ID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, []FieldError{{Field: "id", Message: "must not be empty"}})
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, request.Customer, request.Address)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeUpdateError(ctx, orderID, err)
	}

	s.orderMetrics.OrderUpdated()
	s.orderMetrics.ObserveOperation(metrics.OpUpdate, time.Since(started))
	s.logger.InfoContext(ctx.Request().Context(), "Order updated", "orderId", updated.ID().String(), "version", updated.Version())

	return ctx.JSON(http.StatusAccepted, MutationResponse{
		ID:       updated.ID().String(),
		Creation: updated.OrderDate().Format(time.RFC3339),
		Status:   updated.Status().String(),
	})
}

func (s *Server) writeUpdateError(ctx echo.Context, orderID kernel.OrderID, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, errs.ErrVersionConflict):
		s.orderMetrics.OperationFailed(metrics.OpUpdate)
		s.logger.WarnContext(ctx.Request().Context(), "Concurrent order update rejected", "orderId", orderID.String())
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Order was modified concurrently",
		})
	default:
		s.orderMetrics.OperationFailed(metrics.OpUpdate)
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to update order", "orderId", orderID.String(), "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: orderNotProcessedMessage,
		})
	}
}
