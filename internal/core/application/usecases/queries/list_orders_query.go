package queries

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// Sortable fields exposed by the list operation, in API spelling.
const (
	SortByCreatedAt = "createdAt"
	SortByUpdatedAt = "updatedAt"
	SortByID        = "id"
	SortByStatus    = "status"
)

// sortColumns maps API field names to database columns. Doubles as the
// whitelist guarding against arbitrary sort expressions.
var sortColumns = map[string]string{
	SortByCreatedAt: "created_at",
	SortByUpdatedAt: "updated_at",
	SortByID:        "id",
	SortByStatus:    "status",
}

// ListOrdersQuery retrieves a page of a customer's orders, optionally
// filtered by a set of statuses.
//
// Pagination is 0-indexed and offset-based; each page is computed
// independently. When the status set is empty no status filter is applied.
type ListOrdersQuery struct {
	customerID string
	statuses   []order.Status
	page       int
	size       int
	sortBy     string
	descending bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a validated list query.
//
// Validation rules:
//   - customerID must be non-blank
//   - page must be >= 0, size must be > 0
//   - sortBy must be one of the exposed sortable fields
//   - every status in the filter set must be valid
func NewListOrdersQuery(
	customerID string,
	statuses []order.Status,
	page int,
	size int,
	sortBy string,
	descending bool,
) (ListOrdersQuery, error) {
	if customerID == "" {
		return ListOrdersQuery{}, errs.NewValueIsRequiredError("customerId")
	}
	if page < 0 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"page", fmt.Errorf("%d is negative", page))
	}
	if size <= 0 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"size", fmt.Errorf("%d is not greater than 0", size))
	}
	if _, ok := sortColumns[sortBy]; !ok {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"sort", fmt.Errorf("%q is not a sortable field", sortBy))
	}
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		customerID: customerID,
		statuses:   append([]order.Status(nil), statuses...),
		page:       page,
		size:       size,
		sortBy:     sortBy,
		descending: descending,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are listed.
func (q ListOrdersQuery) CustomerID() string {
	return q.customerID
}

// Statuses returns the status filter set; empty means no filter.
func (q ListOrdersQuery) Statuses() []order.Status {
	return append([]order.Status(nil), q.statuses...)
}

// Page returns the 0-indexed page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q ListOrdersQuery) Size() int {
	return q.size
}

// SortBy returns the sort field in API spelling.
func (q ListOrdersQuery) SortBy() string {
	return q.sortBy
}

// Descending reports whether the sort direction is descending.
func (q ListOrdersQuery) Descending() bool {
	return q.descending
}

// OrderPageResponse is one offset-indexed slice of a customer's orders
// together with the totals needed to iterate the full result set.
type OrderPageResponse struct {
	Content       []OrderResponse
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}
