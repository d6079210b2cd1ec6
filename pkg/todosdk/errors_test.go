package todosdk

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIErrorIs(t *testing.T) {
	got := &APIError{StatusCode: 404, Code: ErrorCodeNotFound, Description: "todo 7"}

	require.ErrorIs(t, got, ErrNotFound)
	require.False(t, errors.Is(got, ErrUnauthorized))
	require.Equal(t, "not_found: todo 7", got.Error())
}

func TestParseErrorResponse(t *testing.T) {
	t.Run("json body", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusConflict}
		err := parseErrorResponse(resp, []byte(`{"error":"duplicate_username","error_description":"taken"}`))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusConflict, apiErr.StatusCode)
		require.ErrorIs(t, err, ErrDuplicateUsername)
		require.Equal(t, "taken", apiErr.Description)
	})

	t.Run("plain body falls back to status", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusNotFound}
		err := parseErrorResponse(resp, []byte("404 page not found\n"))

		require.ErrorIs(t, err, ErrNotFound)
		require.Contains(t, err.Error(), "404 page not found")
	})

	t.Run("unknown status", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusTeapot}
		require.ErrorIs(t, parseErrorResponse(resp, nil), ErrServerError)
	})
}

func TestWithDescription(t *testing.T) {
	e := ErrInvalidArgument.WithDescription("skip must not be negative")
	require.ErrorIs(t, e, ErrInvalidArgument)
	require.Equal(t, http.StatusBadRequest, e.StatusCode)
	require.NotEqual(t, ErrInvalidArgument.Description, e.Description)
}
