package errs_test

import (
	"errors"
	"testing"

	"swiftdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
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

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("index", 5, 0, 2)

		assert.Equal(t, "index", err.ParamName)
		assert.Equal(t, 5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 2, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 5 is index, min value is 0, max value is 2", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("pickupAddress")

		assert.Equal(t, "pickupAddress", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: pickupAddress", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("pickupAddress", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: pickupAddress (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestUnauthorizedError(t *testing.T) {
	t.Run("NewUnauthorizedError", func(t *testing.T) {
		err := errs.NewUnauthorizedError("DRIVER", "transition order to PREPARING")

		assert.Equal(t, "DRIVER", err.Role)
		assert.Equal(t, "transition order to PREPARING", err.Action)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"actor is not authorized: role is: DRIVER, action is: transition order to PREPARING",
			err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})

	t.Run("NewUnauthorizedErrorWithCause", func(t *testing.T) {
		cause := errors.New("order belongs to another driver")
		err := errs.NewUnauthorizedErrorWithCause("DRIVER", "pick up order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"actor is not authorized: role is: DRIVER, action is: pick up order (cause: order belongs to another driver)",
			err.Error())
	})
}

func TestIllegalTransitionError(t *testing.T) {
	t.Run("NewIllegalTransitionError", func(t *testing.T) {
		err := errs.NewIllegalTransitionError("DELIVERED", "PREPARING")

		assert.Equal(t, "DELIVERED", err.From)
		assert.Equal(t, "PREPARING", err.To)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"transition is not allowed: from is: DELIVERED, to is: PREPARING",
			err.Error())
		assert.Equal(t, errs.ErrIllegalTransition, err.Unwrap())
	})

	t.Run("NewIllegalTransitionErrorWithCause", func(t *testing.T) {
		cause := errs.NewVersionConflictError("o-1", 2, 3)
		err := errs.NewIllegalTransitionErrorWithCause("PREPARING", "READY_FOR_PICKUP", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "version conflict")
	})
}

func TestPricingIntegrityError(t *testing.T) {
	t.Run("NewPricingIntegrityError", func(t *testing.T) {
		err := errs.NewPricingIntegrityError("lineTotal", "-5.00")

		assert.Equal(t, "lineTotal", err.ParamName)
		assert.Equal(t, "-5.00", err.Value)
		assert.Equal(t, "price is corrupt: param is: lineTotal, value is: -5.00", err.Error())
		assert.Equal(t, errs.ErrPricingIntegrity, err.Unwrap())
	})
}

func TestVersionConflictError(t *testing.T) {
	t.Run("NewVersionConflictError", func(t *testing.T) {
		err := errs.NewVersionConflictError("order-1", 3, 4)

		assert.Equal(t, "order-1", err.ID)
		assert.Equal(t, int64(3), err.Expected)
		assert.Equal(t, int64(4), err.Actual)
		assert.Equal(t, "version conflict: ID is: order-1, expected is: 3, actual is: 4", err.Error())
		assert.Equal(t, errs.ErrVersionConflict, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrUnauthorized)
		require.Error(t, errs.ErrIllegalTransition)
		require.Error(t, errs.ErrEmptyCart)
		require.Error(t, errs.ErrPricingIntegrity)
		require.Error(t, errs.ErrVersionConflict)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "actor is not authorized", errs.ErrUnauthorized.Error())
		assert.Equal(t, "transition is not allowed", errs.ErrIllegalTransition.Error())
		assert.Equal(t, "cart is empty", errs.ErrEmptyCart.Error())
		assert.Equal(t, "price is corrupt", errs.ErrPricingIntegrity.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("quantity"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("index", 5, 0, 2), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("dropoffAddress"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewUnauthorizedError("CUSTOMER", "deliver order"), errs.ErrUnauthorized)
		require.ErrorIs(t, errs.NewIllegalTransitionError("DELIVERED", "PENDING"), errs.ErrIllegalTransition)
		require.ErrorIs(t, errs.NewPricingIntegrityError("unit", "-1"), errs.ErrPricingIntegrity)
		require.ErrorIs(t, errs.NewVersionConflictError("o", 1, 2), errs.ErrVersionConflict)
	})
}
