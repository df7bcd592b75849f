package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations are assumed to be transactional and to return consistent
// snapshots.
type OrderRepository interface {
	// Add persists a new order and its items atomically and returns the
	// aggregate rehydrated with the store-assigned identifier.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists the mutable state (status, updated timestamp) of an
	// existing order. The order must already exist in the repository.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateAll persists the mutable state of a batch of existing orders.
	// Used by the promotion flow to write one batch per run.
	UpdateAll(ctx context.Context, aggregates []*order.Order) error

	// Get retrieves an order with its items by the store-assigned id.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllInPendingStatus retrieves every order currently in Pending
	// status. The promotion job transitions exactly this set.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)
}
