// Package apperr defines the caller-caused errors shared by the provider and
// the view builders.
package apperr

import (
	"errors"
	"fmt"
)

// Error codes, used as metric outcome labels.
const (
	CodeNotFound        = "not_found"
	CodeInvalidArgument = "invalid_argument"
)

// Error is a caller-caused failure with a stable code.
type Error struct {
	code string
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Code returns the error code.
func (e *Error) Code() string { return e.code }

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = &Error{code: CodeNotFound, msg: "not found"}

	// ErrInvalidArgument is returned (wrapped) for malformed input.
	ErrInvalidArgument = &Error{code: CodeInvalidArgument, msg: "invalid argument"}
)

// NotFoundError reports that no entity of Kind has the given ID.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Code returns CodeNotFound.
func (e *NotFoundError) Code() string { return CodeNotFound }

// NotFound returns a NotFoundError for the entity.
func NotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// InvalidArgument wraps ErrInvalidArgument with a formatted detail.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// IsNotFound reports whether err is, or wraps, a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
