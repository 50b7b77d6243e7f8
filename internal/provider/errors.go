package provider

import "github.com/mmynk/splitbeam/internal/apperr"

// Errors returned by provider operations. They are defined in apperr so the
// view builders can report the same failures without importing provider.
const (
	CodeNotFound        = apperr.CodeNotFound
	CodeInvalidArgument = apperr.CodeInvalidArgument
)

type (
	Error         = apperr.Error
	NotFoundError = apperr.NotFoundError
)

var (
	ErrNotFound        = apperr.ErrNotFound
	ErrInvalidArgument = apperr.ErrInvalidArgument
)

func notFound(kind, id string) error {
	return apperr.NotFound(kind, id)
}

func invalidArgument(format string, args ...any) error {
	return apperr.InvalidArgument(format, args...)
}

// IsNotFound reports whether err is, or wraps, a not-found error.
func IsNotFound(err error) bool {
	return apperr.IsNotFound(err)
}
