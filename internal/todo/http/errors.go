package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/tabtodo/internal/todo/service"
	"github.com/aussiebroadwan/tabtodo/pkg/httpx"
	"github.com/aussiebroadwan/tabtodo/pkg/slogx"
	"github.com/aussiebroadwan/tabtodo/pkg/todosdk"
)

var kindErrors = map[error]*todosdk.APIError{
	service.ErrNotFound:             todosdk.ErrNotFound,
	service.ErrDuplicateUsername:    todosdk.ErrDuplicateUsername,
	service.ErrDuplicateDescription: todosdk.ErrDuplicateDescription,
	service.ErrInvalidCredentials:   todosdk.ErrInvalidCredentials,
	service.ErrUnauthorized:         todosdk.ErrUnauthorized,
	service.ErrInvalidArgument:      todosdk.ErrInvalidArgument,
	service.ErrUnavailable:          todosdk.ErrUnavailable,
}

// writeAPIError writes e as the response body with its status.
func writeAPIError(w http.ResponseWriter, e *todosdk.APIError) {
	if e.StatusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	}
	httpx.WriteJSON(w, e.StatusCode, e)
}

// writeServiceError maps a service error to its response. Only invalid
// arguments echo the error text; everything else uses the fixed description.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	kind := service.Kind(err)
	apiErr := kindErrors[kind]

	switch {
	case errors.Is(kind, service.ErrInvalidArgument):
		apiErr = apiErr.WithDescription(err.Error())
	case errors.Is(kind, service.ErrUnavailable):
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("err", err))
	}

	writeAPIError(w, apiErr)
}

func badRequest(w http.ResponseWriter, desc string) {
	writeAPIError(w, todosdk.ErrInvalidArgument.WithDescription(desc))
}
