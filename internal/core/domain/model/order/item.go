package order

import (
	"fmt"

	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is a value object describing one line of an order: a SKU, a display
// name, a positive quantity and a strictly positive unit price. Items are
// exclusively owned by their parent order and never change after creation.
//
// The zero value is invalid; items must be created via NewItem.
type Item struct {
	sku       string
	name      string
	quantity  int
	unitPrice decimal.Decimal

	isConstructed bool
}

// NewItem creates a validated line item.
//
// Validation rules:
//   - sku and name must be non-blank
//   - quantity must be greater than 0
//   - unitPrice must be strictly positive
func NewItem(sku string, name string, quantity int, unitPrice decimal.Decimal) (Item, error) {
	if sku == "" {
		return Item{}, errs.NewValueIsRequiredError("sku")
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if !unitPrice.IsPositive() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is not greater than 0", unitPrice),
		)
	}

	return Item{
		sku:           sku,
		name:          name,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return errs.NewValueIsRequiredError("item must be created via NewItem constructor")
	}
	return nil
}

// SKU returns the item's stock keeping unit.
func (i Item) SKU() string {
	return i.sku
}

// Name returns the item's display name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// LineTotal returns unitPrice multiplied by quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}
