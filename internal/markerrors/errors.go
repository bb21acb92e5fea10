package markerrors

import "errors"

// Store-level errors
var (
	ErrNotFound = errors.New("record not found")
	ErrStore    = errors.New("store failure")
)

// business logic errors
var (
	ErrValidation   = errors.New("invalid input")
	ErrInvalidState = errors.New("operation not allowed for current status")
	ErrForbidden    = errors.New("not authorized")
)
