package commands

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order cancellation.
//
// Cancellation is only legal while the order is still PENDING:
//   - a missing order surfaces as NotFound (ORDER_NOT_FOUND)
//   - a non-pending order surfaces as a business-rule violation
//     (ORDER_NOT_PENDING) and the stored status stays unchanged
//   - anything else is wrapped as internal (ERROR_CANCEL_ORDER)
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel command and returns the updated order.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, wrapCancelOrderError(err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	existing, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, wrapCancelOrderError(err)
	}

	if err = existing.Cancel(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, existing); err != nil {
		return nil, wrapCancelOrderError(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, wrapCancelOrderError(err)
	}

	return existing, nil
}

// wrapCancelOrderError wraps unexpected failures while letting the expected
// NotFound category pass through untouched.
func wrapCancelOrderError(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrInternal) {
		return err
	}
	return errs.NewInternalErrorWithCause("ERROR_CANCEL_ORDER", "error cancelling order", err)
}
