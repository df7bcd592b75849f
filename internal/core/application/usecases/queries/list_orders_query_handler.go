package queries

import (
	"context"

	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves paged order projections for a customer.
// An empty result set yields an empty page, never a NotFound.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for paged order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing: one count query for the page totals and one
// page query with the requested sort and offset. Unexpected backend
// failures are wrapped as internal errors with code ERROR_LIST_ORDERS.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (OrderPageResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderPageResponse{}, err
	}

	var total int64
	if err := h.filtered(ctx, query).Model(&orderRow{}).Count(&total).Error; err != nil {
		return OrderPageResponse{}, errs.NewInternalErrorWithCause(
			"ERROR_LIST_ORDERS", "error while listing orders", err)
	}

	direction := "ASC"
	if query.Descending() {
		direction = "DESC"
	}

	rows := make([]orderRow, 0, query.Size())
	err := h.filtered(ctx, query).
		Preload("Items").
		Order(sortColumns[query.SortBy()] + " " + direction).
		Limit(query.Size()).
		Offset(query.Page() * query.Size()).
		Find(&rows).Error
	if err != nil {
		return OrderPageResponse{}, errs.NewInternalErrorWithCause(
			"ERROR_LIST_ORDERS", "error while listing orders", err)
	}

	content := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		content = append(content, toOrderResponse(row))
	}

	totalPages := int((total + int64(query.Size()) - 1) / int64(query.Size()))

	return OrderPageResponse{
		Content:       content,
		Page:          query.Page(),
		Size:          query.Size(),
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// filtered builds the customer/status filter shared by the count and the
// page query. A fresh chain is built per call; gorm statements are not
// reusable across executions.
func (h ListOrdersQueryHandler) filtered(ctx context.Context, query ListOrdersQuery) *gorm.DB {
	db := h.db.WithContext(ctx).Where("customer_id = ?", query.CustomerID())

	statuses := query.Statuses()
	if len(statuses) > 0 {
		names := make([]string, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, s.String())
		}
		db = db.Where("status IN ?", names)
	}

	return db
}
