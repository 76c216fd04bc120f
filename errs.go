package svgclean

import "errors"

var (
	// ErrInput is returned when a file cannot be read or written.
	ErrInput = errors.New("input error")

	// ErrValidation is returned by Clean when the document fails the
	// checks run before any pass. The document is then left untouched.
	ErrValidation = errors.New("validation error")
)
