package errs_test

import (
	"errors"
	"testing"

	"serviceordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("serviceOrderId", "42")

		assert.Equal(t, "serviceOrderId", err.ParamName)
		assert.Equal(t, "42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("row scan failed")
		err := errs.NewObjectNotFoundErrorWithCause("listenerId", "7", cause)

		assert.Equal(t, "listenerId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: listenerId, ID is: 7 (cause: row scan failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("serviceOrderId", "1")

	assert.Equal(t, "serviceOrderId", err.ParamName)
	assert.Equal(t, "resource already exists: 1", err.Error())
	assert.Equal(t, errs.ErrConflict, err.Unwrap())
}

func TestInvalidRequestError(t *testing.T) {
	t.Run("NewInvalidRequestError", func(t *testing.T) {
		err := errs.NewInvalidRequestError("patch payload includes non-patchable fields: priority")

		require.NoError(t, err.Cause)
		assert.Equal(t,
			"request is invalid: patch payload includes non-patchable fields: priority",
			err.Error())
		assert.Equal(t, errs.ErrInvalidRequest, err.Unwrap())
	})

	t.Run("NewInvalidRequestErrorWithCause", func(t *testing.T) {
		cause := errors.New("unexpected token")
		err := errs.NewInvalidRequestErrorWithCause("body is not valid JSON", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"request is invalid: body is not valid JSON (cause: unexpected token)",
			err.Error())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewInvalidRequestError("first\nsecond")
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "first second")
	})
}

func TestInvalidFilterError(t *testing.T) {
	t.Run("key only", func(t *testing.T) {
		err := errs.NewInvalidFilterError("bogusField", "")
		assert.Equal(t, "filter is invalid: bogusField", err.Error())
		assert.Equal(t, errs.ErrInvalidFilter, err.Unwrap())
	})

	t.Run("key and message", func(t *testing.T) {
		err := errs.NewInvalidFilterError("orderDate.gt", "not an ISO-8601 timestamp")
		assert.Equal(t, "filter is invalid: orderDate.gt: not an ISO-8601 timestamp", err.Error())
	})
}

func TestInvalidFieldSelectionError(t *testing.T) {
	err := errs.NewInvalidFieldSelectionError("unsupported fields in selection: bogus")

	assert.Equal(t, "field selection is invalid: unsupported fields in selection: bogus", err.Error())
	assert.Equal(t, errs.ErrInvalidFieldSelection, err.Unwrap())
}

func TestInternalError(t *testing.T) {
	cause := errors.New("map entry missing")
	err := errs.NewInternalErrorWithCause("update of unknown service order", cause)

	assert.Equal(t,
		"internal error: update of unknown service order (cause: map entry missing)",
		err.Error())
	assert.Equal(t, errs.ErrInternal, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("id", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewConflictError("id", "1"), errs.ErrConflict)
	require.ErrorIs(t, errs.NewInvalidRequestError("x"), errs.ErrInvalidRequest)
	require.ErrorIs(t, errs.NewInvalidFilterError("x", ""), errs.ErrInvalidFilter)
	require.ErrorIs(t, errs.NewInvalidFieldSelectionError("x"), errs.ErrInvalidFieldSelection)
	require.ErrorIs(t, errs.NewInternalError("x"), errs.ErrInternal)
}
