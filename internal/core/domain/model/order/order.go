package order

import (
	"errors"
	"time"

	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a customer's purchase request. It is the aggregate root
// that manages the order lifecycle from creation through promotion or
// cancellation.
//
// Order maintains these invariants:
//   - customerID is non-blank
//   - at least one line item exists
//   - status transitions follow the Status state machine
//   - updatedAt is never before createdAt
//
// The numeric identifier is assigned by the store: a freshly constructed
// order has id 0 until it is persisted, at which point the repository
// returns a rehydrated aggregate carrying the assigned id. Orders are never
// physically deleted by this service.
type Order struct {
	// id is the store-assigned identifier (0 until persisted)
	id int64

	// customerID identifies the customer who placed the order
	customerID string

	// status is the current state in the order lifecycle
	status Status

	// createdAt is set once at construction
	createdAt time.Time

	// updatedAt is refreshed on every mutation
	updatedAt time.Time

	// items is the ordered list of line items, owned by this order
	items []Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with the current time as
// both created and updated timestamps. This is the only way to create an
// order that has not been persisted yet.
//
// Parameters:
//   - customerID: non-blank customer identifier
//   - items: at least one validated line item
//
// Returns a validation error if customerID is blank, items is empty, or any
// item was not built through NewItem.
func NewOrder(customerID string, items []Item) (*Order, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	return &Order{
		customerID:    customerID,
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		items:         append([]Item(nil), items...),
		isConstructed: true,
	}, nil
}

// RestoreOrder rehydrates an Order from persistence. Unlike NewOrder it
// accepts any valid status and the stored timestamps, but it enforces the
// same structural invariants.
func RestoreOrder(
	id int64,
	customerID string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	items []Item,
) (*Order, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if updatedAt.Before(createdAt) {
		return nil, errs.NewValueIsInvalidError("updatedAt")
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		items:         append([]Item(nil), items...),
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value or hand-built instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or 0 if not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Total returns the sum of all line totals. It is a pure function over the
// current item list, recomputed on every call and never cached.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Promote transitions the order from Pending to Processing and refreshes
// the updated timestamp. Only the promotion flow calls this; any other
// current status is rejected by the state machine.
func (o *Order) Promote() error {
	newStatus, err := o.status.Promote()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel transitions the order from Pending to Canceled and refreshes the
// updated timestamp.
//
// Cancellation is only legal from Pending. Attempting it on any other
// status returns a BusinessRuleError with code ORDER_NOT_PENDING and leaves
// the order unchanged.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// touch refreshes updatedAt. Called on every mutation.
func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}
