package queries

import (
	"context"
	"errors"

	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order projection from the
// database. A missing order is reported as NotFound (ORDER_NOT_FOUND) and
// never as a partial or empty projection.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Unexpected backend failures are wrapped as
// internal errors with code ERROR_GET_ORDER.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).
		Preload("Items").
		First(&row, "id = ?", query.OrderID()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, errs.NewObjectNotFoundError("ORDER_NOT_FOUND", "order", query.OrderID())
		}
		return OrderResponse{}, errs.NewInternalErrorWithCause("ERROR_GET_ORDER", "error fetching order details", err)
	}

	return toOrderResponse(row), nil
}
