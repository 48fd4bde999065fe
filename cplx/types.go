// SPDX-License-Identifier: MIT

// Package cplx - Complex storage, constructors and the lock-aware writer.
//
// Purpose:
//   - Hold one complex number as two float64 parts (re, im).
//   - Route every coordinate write through assign, the single place that
//     decides between mutate-in-place and produce-new-instance.
//
// Complexity quicksheet:
//   - New/Zero/Clone: O(1); accessors: O(1).
package cplx

import (
	"encoding"
	"fmt"
	"math"
)

// Complex is a mutable complex number.
//   - re, im are the rectangular parts.
//   - locked is set by Finalize; a locked value is never written again and
//     every writer on it returns a fresh, unlocked *Complex instead.
//
// The zero value is 0+0i and ready to use. Complex performs no internal
// synchronization; share a mutable instance across goroutines only under
// external locking, or Finalize it first.
type Complex struct {
	re, im float64
	locked bool
}

var (
	_ fmt.Stringer             = Complex{}
	_ encoding.TextMarshaler   = Complex{}
	_ encoding.TextUnmarshaler = (*Complex)(nil)
)

// New returns re+im·i.
func New(re, im float64) *Complex {
	return &Complex{re: re, im: im}
}

// Zero returns 0+0i.
func Zero() *Complex {
	return &Complex{}
}

// NewPolar returns r·(cos φ + i·sin φ).
// Errors: ErrNotNumeric when r or phi is NaN or ±Inf.
func NewPolar(r, phi float64) (*Complex, error) {
	return Zero().SetPolarCoords(r, phi)
}

// Re returns the real part.
func (z *Complex) Re() float64 { return z.re }

// Im returns the imaginary part.
func (z *Complex) Im() float64 { return z.im }

// Complex128 returns the value as a builtin complex128.
func (z *Complex) Complex128() complex128 { return complex(z.re, z.im) }

// IsFinalized reports whether Finalize has been called on z.
func (z *Complex) IsFinalized() bool { return z.locked }

// assign writes (re, im) into z and returns z, or, when z is finalized,
// returns a new unlocked Complex holding (re, im) and leaves z untouched.
// Callers validate before calling; assign itself never fails.
func (z *Complex) assign(re, im float64) *Complex {
	if z.locked {
		return &Complex{re: re, im: im}
	}
	z.re, z.im = re, im

	return z
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
