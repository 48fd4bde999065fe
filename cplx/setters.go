// SPDX-License-Identifier: MIT

package cplx

import "math"

// SetRe sets the real part.
// Errors: ErrNotNumeric when x is NaN or ±Inf; z is left unchanged.
// On a finalized z the result is a new Complex (x, z.Im()).
func (z *Complex) SetRe(x float64) (*Complex, error) {
	if !isFinite(x) {
		return z, notNumeric(labelRe)
	}

	return z.assign(x, z.im), nil
}

// SetIm sets the imaginary part.
// Errors: ErrNotNumeric when x is NaN or ±Inf; z is left unchanged.
// On a finalized z the result is a new Complex (z.Re(), x).
func (z *Complex) SetIm(x float64) (*Complex, error) {
	if !isFinite(x) {
		return z, notNumeric(labelIm)
	}

	return z.assign(z.re, x), nil
}

// SetRectCoords sets both parts at once.
// Both arguments are validated before either is written, so a failure
// never leaves z half-updated.
func (z *Complex) SetRectCoords(re, im float64) (*Complex, error) {
	if !isFinite(re) || !isFinite(im) {
		return z, notNumeric(labelRect)
	}

	return z.assign(re, im), nil
}

// SetPolarCoords sets z to r·(cos φ + i·sin φ).
func (z *Complex) SetPolarCoords(r, phi float64) (*Complex, error) {
	if !isFinite(r) || !isFinite(phi) {
		return z, notNumeric(labelPolar)
	}

	return z.SetRectCoords(r*math.Cos(phi), r*math.Sin(phi))
}

// setPolar is the unchecked polar writer used by Exp; NaN and ±Inf propagate.
func (z *Complex) setPolar(r, phi float64) *Complex {
	return z.assign(r*math.Cos(phi), r*math.Sin(phi))
}

// SetPrecision rounds both parts to p significant digits.
//
// Behavior highlights:
//   - Decimal rounding, ties away from zero (2.5 → 3 at p=1).
//   - NaN and ±Inf parts are kept as they are.
//
// Errors: ErrOutOfRange unless 1 ≤ p ≤ 100.
func (z *Complex) SetPrecision(p int) (*Complex, error) {
	if p < minPrecision || p > maxPrecision {
		return z, outOfRange(labelPrecision)
	}

	return z.assign(roundSignificant(z.re, p), roundSignificant(z.im, p)), nil
}

// SetFixed rounds both parts to d digits after the decimal point.
//
// Behavior highlights:
//   - Decimal rounding, ties away from zero.
//   - Parts with |x| ≥ 1e21, NaN or ±Inf are kept as they are.
//
// Errors: ErrOutOfRange unless 0 ≤ d ≤ 100.
func (z *Complex) SetFixed(d int) (*Complex, error) {
	if d < minDigits || d > maxDigits {
		return z, outOfRange(labelDigits)
	}

	return z.assign(roundFixed(z.re, d), roundFixed(z.im, d)), nil
}

// Finalize locks z. Afterwards z never changes: every operation that would
// write its coordinates returns a new, unlocked Complex instead.
// Finalize returns z itself; calling it again is a no-op.
func (z *Complex) Finalize() *Complex {
	z.locked = true

	return z
}
