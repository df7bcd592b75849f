package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// NewOrderItem carries the line-item attributes of a create request.
// Field-level validation (non-blank sku/name, positive quantity and price)
// is enforced by the domain when the items are constructed.
type NewOrderItem struct {
	SKU       string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreateOrderCommand represents a request to create a new order for a
// customer with at least one line item.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("cust-1", []NewOrderItem{
//	    {SKU: "SKU-1", Name: "Mouse", Quantity: 1, UnitPrice: decimal.RequireFromString("499.99")},
//	})
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	customerID string
	items      []NewOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the customer id is non-blank and at least one item was
// supplied; per-field item validation happens in the domain.
func NewCreateOrderCommand(customerID string, items []NewOrderItem) (CreateOrderCommand, error) {
	if customerID == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("customerId")
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}

	return CreateOrderCommand{
		customerID: customerID,
		items:      append([]NewOrderItem(nil), items...),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []NewOrderItem {
	return append([]NewOrderItem(nil), c.items...)
}
