package todosdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error codes returned in the "error" field of error responses.
const (
	ErrorCodeNotFound             = "not_found"
	ErrorCodeDuplicateUsername    = "duplicate_username"
	ErrorCodeDuplicateDescription = "duplicate_description"
	ErrorCodeInvalidCredentials   = "invalid_credentials"
	ErrorCodeUnauthorized         = "unauthorized"
	ErrorCodeInvalidArgument      = "invalid_argument"
	ErrorCodeUnavailable          = "unavailable"
	ErrorCodeServerError          = "server_error"
)

// APIError is an error response from the API. It is used both by the server
// (to write responses) and by the client (to report them).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	Code        string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches any APIError with the same code.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Code == e.Code
}

// WithDescription returns a copy of e carrying desc.
func (e *APIError) WithDescription(desc string) *APIError {
	return &APIError{StatusCode: e.StatusCode, Code: e.Code, Description: desc}
}

var (
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	ErrDuplicateUsername = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeDuplicateUsername,
		Description: "username already taken",
	}

	ErrDuplicateDescription = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeDuplicateDescription,
		Description: "a tag with this description already exists",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid username or password",
	}

	ErrUnauthorized = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthorized,
		Description: "missing, invalid or expired token",
	}

	ErrInvalidArgument = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidArgument,
		Description: "the request is malformed or has invalid values",
	}

	ErrUnavailable = &APIError{
		StatusCode:  http.StatusServiceUnavailable,
		Code:        ErrorCodeUnavailable,
		Description: "service temporarily unavailable",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseErrorResponse builds an APIError from a non-success response.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = codeForStatus(resp.StatusCode)
		apiErr.Description = strings.TrimSpace(string(body))
	}
	return apiErr
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return ErrorCodeNotFound
	case http.StatusUnauthorized:
		return ErrorCodeUnauthorized
	case http.StatusBadRequest:
		return ErrorCodeInvalidArgument
	case http.StatusServiceUnavailable:
		return ErrorCodeUnavailable
	default:
		return ErrorCodeServerError
	}
}
