package commands

import (
	"context"
	"errors"

	"orders/internal/pkg/errs"
)

// PromotePendingOrdersCommandHandler transitions every order that is PENDING
// at invocation time to PROCESSING and persists the whole set in one batch.
// Returns the number of orders transitioned; zero is a valid, non-error
// result. Orders in any other status are untouched.
type PromotePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPromotePendingOrdersCommandHandler creates a handler for the bulk
// promotion operation.
func NewPromotePendingOrdersCommandHandler(uowFactory OrderUoWFactory) PromotePendingOrdersCommandHandler {
	return PromotePendingOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reads all pending orders, promotes each, and batch-persists them
// within a single transaction. Failures are wrapped as internal errors with
// code ERROR_PROMOTE_ORDERS; the next scheduled tick retries.
func (h PromotePendingOrdersCommandHandler) Handle(ctx context.Context, cmd PromotePendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, wrapPromoteOrdersError(err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	pending, err := repo.GetAllInPendingStatus(ctx)
	if err != nil {
		return 0, wrapPromoteOrdersError(err)
	}

	if len(pending) == 0 {
		return 0, nil
	}

	for _, o := range pending {
		if err = o.Promote(); err != nil {
			return 0, wrapPromoteOrdersError(err)
		}
	}

	if err = repo.UpdateAll(ctx, pending); err != nil {
		return 0, wrapPromoteOrdersError(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, wrapPromoteOrdersError(err)
	}

	return len(pending), nil
}

func wrapPromoteOrdersError(err error) error {
	if errors.Is(err, errs.ErrInternal) {
		return err
	}
	return errs.NewInternalErrorWithCause("ERROR_PROMOTE_ORDERS", "error promoting pending orders", err)
}
