package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed to act.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// Time entry engine errors.
//
// ErrIncompleteInput is a soft state: the typed text is not yet enough to
// parse a time. It blocks commit but is never shown as an inline error.
var ErrIncompleteInput = errors.New("input incomplete")

// ErrInvalidTimeFormat indicates structurally malformed time text at commit
// time (e.g. hour outside 1-12).
var ErrInvalidTimeFormat = errors.New("invalid time format")

// ErrInvalidRange indicates reconciliation produced a non-positive duration
// even after the midnight-crossing adjustment.
var ErrInvalidRange = errors.New("end time must be after start time")

// ErrMissingRequiredField indicates a commit was attempted without the
// minimum required field combination.
var ErrMissingRequiredField = errors.New("missing required field")

// FieldError attaches a field name to a validation error so handlers can
// surface it next to the offending input.
type FieldError struct {
	Field string
	Msg   string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError wraps a sentinel error with the field it applies to.
func NewFieldError(field, msg string, err error) *FieldError {
	return &FieldError{Field: field, Msg: msg, Err: err}
}
