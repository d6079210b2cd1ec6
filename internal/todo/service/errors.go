package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/tabtodo/internal/todo/store"
)

// Error kinds surfaced to callers. Compare with errors.Is; the transport maps
// each kind to a status.
var (
	ErrNotFound             = errors.New("not_found")
	ErrDuplicateUsername    = errors.New("duplicate_username")
	ErrDuplicateDescription = errors.New("duplicate_description")
	ErrInvalidCredentials   = errors.New("invalid_credentials")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidArgument      = errors.New("invalid_argument")
	ErrUnavailable          = errors.New("unavailable")
)

var kinds = []error{
	ErrNotFound,
	ErrDuplicateUsername,
	ErrDuplicateDescription,
	ErrInvalidCredentials,
	ErrUnauthorized,
	ErrInvalidArgument,
	ErrUnavailable,
}

// Kind returns the error kind err belongs to, or ErrUnavailable for anything
// unclassified.
func Kind(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrUnavailable
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// classify converts store errors into service kinds. dup is the kind used for
// uniqueness violations; pass nil where none can occur. Errors that already
// carry a kind pass through untouched.
func classify(err error, dup error) error {
	if err == nil {
		return nil
	}

	for _, k := range kinds {
		if errors.Is(err, k) {
			return err
		}
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case dup != nil && errors.Is(err, store.ErrAlreadyExists):
		return dup
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}
