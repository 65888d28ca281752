// Package http exposes the ordering dialog and fulfillment operations over
// REST. Handlers translate transport concerns to commands and queries and
// map business outcomes to status codes; they hold no logic of their own.
package http

import (
	"errors"
	"net/http"
	"time"

	"mealorder/internal/core/application/usecases/commands"
	"mealorder/internal/core/application/usecases/queries"
	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/model/order"
	"mealorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	processMessageHandler   commands.ProcessMessageCommandHandler
	acquireOrderHandler     commands.AcquireOrderCommandHandler
	completeOrderHandler    commands.CompleteOrderCommandHandler
	resetOrderHandler       commands.ResetOrderCommandHandler
	releaseOrderLockHandler commands.ReleaseOrderLockCommandHandler

	// Query handlers
	countAvailableHandler queries.CountAvailableOrdersQueryHandler
	dailyQuotaHandler     queries.GetDailyQuotaQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	processMessageHandler commands.ProcessMessageCommandHandler,
	acquireOrderHandler commands.AcquireOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	resetOrderHandler commands.ResetOrderCommandHandler,
	releaseOrderLockHandler commands.ReleaseOrderLockCommandHandler,
	countAvailableHandler queries.CountAvailableOrdersQueryHandler,
	dailyQuotaHandler queries.GetDailyQuotaQueryHandler,
) *Server {
	return &Server{
		processMessageHandler:   processMessageHandler,
		acquireOrderHandler:     acquireOrderHandler,
		completeOrderHandler:    completeOrderHandler,
		resetOrderHandler:       resetOrderHandler,
		releaseOrderLockHandler: releaseOrderLockHandler,
		countAvailableHandler:   countAvailableHandler,
		dailyQuotaHandler:       dailyQuotaHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/messages", s.PostMessage)
	api.POST("/fulfillment/next", s.AcquireNextOrder)
	api.POST("/fulfillment/orders/:id/complete", s.CompleteOrder)
	api.POST("/fulfillment/orders/:id/reset", s.ResetOrder)
	api.DELETE("/fulfillment/orders/:id/lock", s.ReleaseOrderLock)
	api.GET("/fulfillment/available", s.CountAvailableOrders)
}

// Error is the JSON error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Message is the inbound dialog message payload.
type Message struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

// Reply is the dialog reply payload.
type Reply struct {
	Reply string `json:"reply"`
}

// Order is the JSON representation of an order.
type Order struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	Status    string      `json:"status"`
	OrderDate time.Time   `json:"order_date"`
	Location  *Location   `json:"location,omitempty"`
	Items     []OrderItem `json:"items"`
	SubTotal  float64     `json:"sub_total"`
}

// Location is the JSON representation of a chosen provider location.
type Location struct {
	ID         int64  `json:"id"`
	ProviderID int64  `json:"provider_id"`
	Name       string `json:"name"`
}

// OrderItem is the JSON representation of one ordered line.
type OrderItem struct {
	MenuItemID   int64   `json:"menu_item_id"`
	MenuItemName string  `json:"menu_item_name"`
	Quantity     int64   `json:"quantity"`
	Amount       float64 `json:"amount"`
}

// AvailableOrders is the claimable-order count payload.
type AvailableOrders struct {
	Count int `json:"count"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PostMessage handles POST /api/v1/messages - one turn of the ordering dialog.
// The daily quota is checked before the message reaches the conversation:
// users without active activation codes get 403, users at their daily cap
// get 429.
func (s *Server) PostMessage(ctx echo.Context) error {
	var message Message
	if err := ctx.Bind(&message); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	userID, err := kernel.NewID(message.UserID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid user id",
		})
	}

	quotaQuery, err := queries.NewGetDailyQuotaQuery(userID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid user id",
		})
	}

	quota, err := s.dailyQuotaHandler.Handle(ctx.Request().Context(), quotaQuery)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Unknown user",
		})
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to evaluate daily quota",
		})
	}
	if !quota.HasActiveActivationCodes {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "No active activation codes",
		})
	}
	if quota.MaxDailyOrdersReached {
		return ctx.JSON(http.StatusTooManyRequests, Error{
			Code:    http.StatusTooManyRequests,
			Message: "Daily order limit reached",
		})
	}

	cmd, err := commands.NewProcessMessageCommand(userID, message.Text)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid message: " + err.Error(),
		})
	}

	reply, err := s.processMessageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process message",
		})
	}

	return ctx.JSON(http.StatusOK, Reply{Reply: reply})
}

// AcquireNextOrder handles POST /api/v1/fulfillment/next - claims the next
// open order for the calling worker. Responds 204 when nothing is claimable.
func (s *Server) AcquireNextOrder(ctx echo.Context) error {
	providerID, err := optionalProviderID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid provider id",
		})
	}

	cmd, err := commands.NewAcquireOrderCommand(providerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid provider id",
		})
	}

	acquired, err := s.acquireOrderHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrNoOrderAvailable) {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to acquire order",
		})
	}

	return ctx.JSON(http.StatusOK, orderToResponse(acquired))
}

// CompleteOrder handles POST /api/v1/fulfillment/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	updated, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrNoOrderFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}
	if err != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to complete order: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// ResetOrder handles POST /api/v1/fulfillment/orders/:id/reset.
func (s *Server) ResetOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewResetOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	updated, err := s.resetOrderHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrNoOrderFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}
	if err != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to reset order: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// ReleaseOrderLock handles DELETE /api/v1/fulfillment/orders/:id/lock.
func (s *Server) ReleaseOrderLock(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewReleaseOrderLockCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	err = s.releaseOrderLockHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrNoOrderFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to release order lock",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CountAvailableOrders handles GET /api/v1/fulfillment/available.
// The count is a display-only estimate.
func (s *Server) CountAvailableOrders(ctx echo.Context) error {
	providerID, err := optionalProviderID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid provider id",
		})
	}

	query, err := queries.NewCountAvailableOrdersQuery(providerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid provider id",
		})
	}

	resp, err := s.countAvailableHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to count available orders",
		})
	}

	return ctx.JSON(http.StatusOK, AvailableOrders{Count: resp.Count})
}

func pathOrderID(ctx echo.Context) (kernel.ID, error) {
	return kernel.IDFromString(ctx.Param("id"))
}

func optionalProviderID(ctx echo.Context) (*kernel.ID, error) {
	raw := ctx.QueryParam("provider_id")
	if raw == "" {
		return nil, nil
	}

	id, err := kernel.IDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func orderToResponse(aggregate *order.Order) Order {
	resp := Order{
		ID:        aggregate.ID().Int64(),
		UserID:    aggregate.UserID().Int64(),
		Status:    aggregate.Status().String(),
		OrderDate: aggregate.OrderDate(),
		Items:     make([]OrderItem, 0, len(aggregate.Items())),
		SubTotal:  aggregate.SubTotal(),
	}

	if location := aggregate.Location(); location != nil {
		resp.Location = &Location{
			ID:         location.ID().Int64(),
			ProviderID: location.ProviderID().Int64(),
			Name:       location.Name(),
		}
	}

	for _, item := range aggregate.Items() {
		resp.Items = append(resp.Items, OrderItem{
			MenuItemID:   item.MenuItemID().Int64(),
			MenuItemName: item.MenuItemName(),
			Quantity:     item.Quantity(),
			Amount:       item.Amount(),
		})
	}

	return resp
}
