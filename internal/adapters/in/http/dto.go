package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the JSON body of POST /api/orders.
type CreateOrderRequest struct {
	CustomerID string                   `json:"customerId"`
	Items      []CreateOrderRequestItem `json:"items"`
}

// CreateOrderRequestItem is one requested order line.
type CreateOrderRequestItem struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// OrderItemBody is the JSON representation of an order line.
type OrderItemBody struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// OrderBody is the JSON representation of a full order.
type OrderBody struct {
	ID         int64           `json:"id"`
	CustomerID string          `json:"customerId"`
	Items      []OrderItemBody `json:"items"`
	Status     string          `json:"status"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// PageBody is the JSON envelope of a paged listing.
type PageBody struct {
	Content       []OrderBody `json:"content"`
	Page          int         `json:"page"`
	Size          int         `json:"size"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
}

// ErrorResponse is the JSON body of every non-2xx answer. Status carries
// the HTTP status name, such as NOT_FOUND or BAD_REQUEST.
type ErrorResponse struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

// orderBodyFromDomain maps a write-side aggregate to its JSON shape.
func orderBodyFromDomain(aggregate *order.Order) OrderBody {
	items := make([]OrderItemBody, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemBody{
			SKU:       item.SKU(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			LineTotal: item.LineTotal(),
		})
	}

	return OrderBody{
		ID:         aggregate.ID(),
		CustomerID: aggregate.CustomerID(),
		Items:      items,
		Status:     aggregate.Status().String(),
		Total:      aggregate.Total(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

// orderBodyFromProjection maps a read-side projection to its JSON shape.
func orderBodyFromProjection(response queries.OrderResponse) OrderBody {
	items := make([]OrderItemBody, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, OrderItemBody{
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
	}

	return OrderBody{
		ID:         response.ID,
		CustomerID: response.CustomerID,
		Items:      items,
		Status:     response.Status,
		Total:      response.Total,
		CreatedAt:  response.CreatedAt,
		UpdatedAt:  response.UpdatedAt,
	}
}

// pageBodyFromProjection maps a read-side page to its JSON envelope.
func pageBodyFromProjection(page queries.OrderPageResponse) PageBody {
	content := make([]OrderBody, 0, len(page.Content))
	for _, response := range page.Content {
		content = append(content, orderBodyFromProjection(response))
	}

	return PageBody{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}
