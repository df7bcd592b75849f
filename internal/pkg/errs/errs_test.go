package errs_test

import (
	"errors"
	"testing"

	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("ORDER_NOT_FOUND", "order", int64(123))

		assert.Equal(t, "ORDER_NOT_FOUND", err.Code)
		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, int64(123), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 123 not found", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("ORDER_NOT_FOUND", "order", int64(123), cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: order 123 not found (cause: record not found)", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestBusinessRuleError(t *testing.T) {
	t.Run("NewBusinessRuleError", func(t *testing.T) {
		err := errs.NewBusinessRuleError("ORDER_NOT_PENDING", "cannot cancel order unless it is in PENDING")

		assert.Equal(t, "ORDER_NOT_PENDING", err.Code)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"business rule violated: cannot cancel order unless it is in PENDING",
			err.Error())
		assert.Equal(t, errs.ErrBusinessRuleViolated, err.Unwrap())
	})

	t.Run("NewBusinessRuleErrorWithCause", func(t *testing.T) {
		cause := errors.New("status is SHIPPED")
		err := errs.NewBusinessRuleErrorWithCause("ORDER_NOT_PENDING", "cannot cancel order unless it is in PENDING", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"business rule violated: cannot cancel order unless it is in PENDING (cause: status is SHIPPED)",
			err.Error())
		assert.Equal(t, errs.ErrBusinessRuleViolated, err.Unwrap())
	})
}

func TestInternalError(t *testing.T) {
	t.Run("NewInternalError", func(t *testing.T) {
		err := errs.NewInternalError("ERROR_CREATE_ORDER", "error while creating order")

		assert.Equal(t, "ERROR_CREATE_ORDER", err.Code)
		require.NoError(t, err.Cause)
		assert.Equal(t, "internal error: error while creating order", err.Error())
		assert.Equal(t, errs.ErrInternal, err.Unwrap())
	})

	t.Run("NewInternalErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewInternalErrorWithCause("ERROR_CREATE_ORDER", "error while creating order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "internal error: error while creating order (cause: connection refused)", err.Error())
		assert.Equal(t, errs.ErrInternal, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerId")

		assert.Equal(t, "customerId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("customerId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customerId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize keeps not-found messages single line", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("ORDER_NOT_FOUND", "order", "first\nsecond")
		assert.Contains(t, err.Error(), "first second")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrBusinessRuleViolated)
		require.Error(t, errs.ErrInternal)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrValueIsInvalid)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "business rule violated", errs.ErrBusinessRuleViolated.Error())
		assert.Equal(t, "internal error", errs.ErrInternal.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		notFoundErr := errs.NewObjectNotFoundError("ORDER_NOT_FOUND", "order", int64(1))
		require.ErrorIs(t, notFoundErr, errs.ErrObjectNotFound)

		businessRuleErr := errs.NewBusinessRuleError("ORDER_NOT_PENDING", "not pending")
		require.ErrorIs(t, businessRuleErr, errs.ErrBusinessRuleViolated)

		internalErr := errs.NewInternalErrorWithCause("ERROR_LIST_ORDERS", "listing failed", errors.New("boom"))
		require.ErrorIs(t, internalErr, errs.ErrInternal)

		requiredErr := errs.NewValueIsRequiredError("customerId")
		require.ErrorIs(t, requiredErr, errs.ErrValueIsRequired)

		invalidErr := errs.NewValueIsInvalidError("unitPrice")
		require.ErrorIs(t, invalidErr, errs.ErrValueIsInvalid)
	})
}
