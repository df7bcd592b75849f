// Package http exposes the order management REST API on Echo. Handlers
// translate HTTP requests into commands and queries and map domain errors
// onto status codes with a uniform error body.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// List defaults mirror the query parameters' documented fallbacks.
const (
	defaultPage     = 0
	defaultPageSize = 20
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		cancelOrderHandler: cancelOrderHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/cancel", s.CancelOrder)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  "BAD_REQUEST",
			Details: "invalid request body",
		})
	}

	items := make([]commands.NewOrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.NewOrderItem{
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(request.CustomerID, items)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderBodyFromDomain(created))
}

// GetOrder handles GET /api/orders/:id - retrieves one order with its lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderBodyFromProjection(response))
}

// ListOrders handles GET /api/orders - pages through a customer's orders.
//
// Query parameters: customerId (required), status (repeatable), page,
// size, and sort in "field,direction" form defaulting to createdAt,desc.
func (s *Server) ListOrders(ctx echo.Context) error {
	customerID := ctx.QueryParam("customerId")

	statuses := make([]order.Status, 0)
	for _, raw := range ctx.QueryParams()["status"] {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return s.writeError(ctx, err)
		}
		statuses = append(statuses, status)
	}

	page, err := parseIntParam(ctx, "page", defaultPage)
	if err != nil {
		return s.writeError(ctx, err)
	}

	size, err := parseIntParam(ctx, "size", defaultPageSize)
	if err != nil {
		return s.writeError(ctx, err)
	}

	sortBy, descending := parseSortParam(ctx.QueryParam("sort"))

	query, err := queries.NewListOrdersQuery(customerID, statuses, page, size, sortBy, descending)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pageBodyFromProjection(result))
}

// CancelOrder handles PATCH /api/orders/:id/cancel - cancels a pending order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	canceled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderBodyFromDomain(canceled))
}

// writeError maps domain errors onto HTTP responses. Not-found lookups
// yield 404, invalid input and business rule violations yield 400, and
// everything else is a 500 with the error's own message as details.
func (s *Server) writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Status:  "NOT_FOUND",
			Details: err.Error(),
		})
	case errors.Is(err, errs.ErrBusinessRuleViolated),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  "BAD_REQUEST",
			Details: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Status:  "INTERNAL_SERVER_ERROR",
			Details: err.Error(),
		})
	}
}

func parseOrderID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

func parseIntParam(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

// parseSortParam splits a "field,direction" sort expression. The default
// is createdAt descending; only an explicit "asc" flips the direction.
func parseSortParam(raw string) (string, bool) {
	if raw == "" {
		return queries.SortByCreatedAt, true
	}

	field := raw
	descending := true
	if comma := strings.IndexByte(raw, ','); comma >= 0 {
		field = raw[:comma]
		descending = raw[comma+1:] != "asc"
	}
	if field == "" {
		field = queries.SortByCreatedAt
	}

	return field, descending
}
