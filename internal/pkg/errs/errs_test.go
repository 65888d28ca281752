package errs_test

import (
	"errors"
	"testing"

	"mealorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "42")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "42", err.ID)
		assert.Equal(t, "object not found: 42", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "7", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 7 (cause: connection refused)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "value is invalid: status", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("status", errors.New("5 is not a valid status"))

		assert.Equal(t, "value is invalid: status (cause: 5 is not a valid status)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("selection", 5, 1, 3)

		assert.Equal(t, 5, err.Value)
		assert.Equal(t, "value is invalid: 5 is selection, min value is 1, max value is 3", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("flattens newlines in value", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "two\nlines", 0, 10)

		assert.Contains(t, err.Error(), "two lines")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("selection", 0, 1, 3, errors.New("parsed below minimum"))

		assert.Contains(t, err.Error(), "(cause: parsed below minimum)")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("userId")

		assert.Equal(t, "value is required: userId", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("userId", errors.New("zero value"))

		assert.Equal(t, "value is required: userId (cause: zero value)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}
