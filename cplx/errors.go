// SPDX-License-Identifier: MIT
// Package cplx: sentinel error set.
// Validation failures are *Error values whose Unwrap yields one of the
// sentinels below; callers match with errors.Is and never compare message
// text. The human-readable text comes from the messages catalog.

package cplx

import (
	"errors"

	"github.com/katalvlaran/complexes/messages"
)

var (
	// ErrNotNumeric is returned when a required argument is not a finite
	// number (NaN or ±Inf).
	ErrNotNumeric = errors.New("cplx: value is not numeric")

	// ErrInvalidType is returned when a value cannot be coerced to a Complex.
	ErrInvalidType = errors.New("cplx: invalid value type")

	// ErrOutOfRange is returned when a precision or digit count is outside
	// the supported range.
	ErrOutOfRange = errors.New("cplx: argument out of range")

	// ErrFinalized is returned by decoders asked to overwrite a finalized
	// value. Operations never return it; they produce a new value instead.
	ErrFinalized = errors.New("cplx: value is finalized")
)

// Labels substituted into catalog messages.
const (
	labelRe        = "Specified real value"
	labelIm        = "Specified imaginary value"
	labelRect      = "Specified real value and imaginary value"
	labelPolar     = "Specified r(radius) value and phi(angle) value"
	labelPrecision = "Specified precision value"
	labelDigits    = "Specified digs value"
	labelValue     = "Specified value"
)

// Error is a validation failure raised by a Complex operation.
//   - Kind is the sentinel (ErrNotNumeric, ErrInvalidType, ErrOutOfRange).
//   - Key is the messages catalog key used to render the text.
//   - Label names the offending argument and fills placeholder {0}.
type Error struct {
	Kind  error
	Key   string
	Label string
}

// Error renders the message through the default catalog.
func (e *Error) Error() string {
	return messages.Format(e.Key, e.Label)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Render formats the message with a caller-supplied catalog.
func (e *Error) Render(f messages.Formatter) string {
	if f == nil {
		return e.Error()
	}

	return f(e.Key, e.Label)
}

func notNumeric(label string) error {
	return &Error{Kind: ErrNotNumeric, Key: messages.KeyNotNumeric, Label: label}
}

func invalidType(label string) error {
	return &Error{Kind: ErrInvalidType, Key: messages.KeyTypeInvalid, Label: label}
}

func outOfRange(label string) error {
	return &Error{Kind: ErrOutOfRange, Key: messages.KeyOutOfRange, Label: label}
}
