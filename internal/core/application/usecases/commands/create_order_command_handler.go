package commands

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds the aggregate in PENDING status and persists the order together
// with its items in a single transaction; no partial writes are visible to
// callers.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order
// carrying the store-assigned id and the computed total.
//
// Domain validation failures surface as-is; any persistence failure is
// wrapped into an internal error with code ERROR_CREATE_ORDER.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		item, err := order.NewItem(spec.SKU, spec.Name, spec.Quantity, spec.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.CustomerID(), items)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, wrapCreateOrderError(err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	created, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return nil, wrapCreateOrderError(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, wrapCreateOrderError(err)
	}

	return created, nil
}

func wrapCreateOrderError(err error) error {
	if errors.Is(err, errs.ErrInternal) {
		return err
	}
	return errs.NewInternalErrorWithCause("ERROR_CREATE_ORDER", "error while creating order", err)
}
