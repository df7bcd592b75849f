// Package queries contains read-only operations that project stored orders
// into response models. Query handlers read the database directly, bypassing
// the aggregate and its write-side invariants.
package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// orderRow mirrors the orders table for read-side scanning.
type orderRow struct {
	ID         int64
	CustomerID string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Items      []itemRow `gorm:"foreignKey:OrderID"`
}

func (orderRow) TableName() string {
	return "orders"
}

// itemRow mirrors the order_items table.
type itemRow struct {
	ID        int64
	OrderID   int64
	SKU       string `gorm:"column:sku"`
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (itemRow) TableName() string {
	return "order_items"
}

// OrderItemResponse is the read-side projection of a line item.
type OrderItemResponse struct {
	SKU       string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// OrderResponse is the read-side projection of an order. Total is the sum
// of line totals, computed at projection time.
type OrderResponse struct {
	ID         int64
	CustomerID string
	Items      []OrderItemResponse
	Status     string
	Total      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func toOrderResponse(row orderRow) OrderResponse {
	items := make([]OrderItemResponse, 0, len(row.Items))
	total := decimal.Zero

	for _, item := range row.Items {
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, OrderItemResponse{
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	return OrderResponse{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Items:      items,
		Status:     row.Status,
		Total:      total,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
