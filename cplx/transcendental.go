// SPDX-License-Identifier: MIT

// Package cplx - elementary functions.
//
// Every function here is built from three primitives: the rectangular
// writer (assign), Magnitude and Angle. Results are written through assign,
// so on a finalized receiver they arrive in a new Complex.
//
// Trigonometric and hyperbolic forms use the scalar helpers SinhReal and
// CoshReal, i.e. (eˣ ∓ e⁻ˣ)/2, for the hyperbolic parts.
package cplx

import "math"

// Magnitude returns |z| = sqrt(re² + im²).
func (z *Complex) Magnitude() float64 {
	return math.Sqrt(z.re*z.re + z.im*z.im)
}

// Angle returns arg z = atan2(im, re), in (−π, π].
func (z *Complex) Angle() float64 {
	return math.Atan2(z.im, z.re)
}

// Exp sets z to e^z = e^re·(cos im + i·sin im).
func (z *Complex) Exp() *Complex {
	return z.setPolar(math.Exp(z.re), z.im)
}

// Log sets z to the principal logarithm ln|z| + i·arg z.
// Log of 0 is −Inf + 0i.
func (z *Complex) Log() *Complex {
	return z.LogRotated(0)
}

// LogRotated sets z to ln|z| + i·(arg z + 2π·rotation), selecting the branch
// rotation turns away from the principal one. A NaN rotation counts as 0.
func (z *Complex) LogRotated(rotation float64) *Complex {
	if math.IsNaN(rotation) {
		rotation = 0
	}

	return z.assign(math.Log(z.Magnitude()), z.Angle()+rotation*2*math.Pi)
}

// Pow sets z to z^w = exp(w·log z), where w is v coerced by FromValue.
// No special cases: 0^w follows the float64 arithmetic of the formula.
func (z *Complex) Pow(v any) (*Complex, error) {
	w, err := FromValue(v)
	if err != nil {
		return z, err
	}
	// w is a fresh copy, so multiplying into it is safe.
	if _, err = w.Multiply(z.Clone().Log()); err != nil {
		return z, err
	}
	w.Exp()

	return z.assign(w.re, w.im), nil
}

// Sqrt sets z to its principal square root. The imaginary part of the
// result carries the sign of z's imaginary part (+ for im == 0).
func (z *Complex) Sqrt() *Complex {
	abs := z.Magnitude()
	sgn := 1.0
	if z.im < 0 {
		sgn = -1
	}

	return z.assign(math.Sqrt((abs+z.re)/2), sgn*math.Sqrt((abs-z.re)/2))
}

// SinhReal returns (eˣ − e⁻ˣ)/2.
func SinhReal(x float64) float64 {
	return (math.Exp(x) - math.Exp(-x)) / 2
}

// CoshReal returns (eˣ + e⁻ˣ)/2.
func CoshReal(x float64) float64 {
	return (math.Exp(x) + math.Exp(-x)) / 2
}

// Sin sets z to sin(a+bi) = sin a·cosh b + i·cos a·sinh b.
func (z *Complex) Sin() *Complex {
	a, b := z.re, z.im

	return z.assign(math.Sin(a)*CoshReal(b), math.Cos(a)*SinhReal(b))
}

// Cos sets z to cos(a+bi) = cos a·cosh b − i·sin a·sinh b.
func (z *Complex) Cos() *Complex {
	a, b := z.re, z.im

	return z.assign(math.Cos(a)*CoshReal(b), -math.Sin(a)*SinhReal(b))
}

// Tan sets z to tan(a+bi) = (sin 2a + i·sinh 2b) / (cos 2a + cosh 2b).
func (z *Complex) Tan() *Complex {
	a, b := z.re, z.im
	d := math.Cos(2*a) + CoshReal(2*b)

	return z.assign(math.Sin(2*a)/d, SinhReal(2*b)/d)
}

// Sinh sets z to sinh(a+bi) = sinh a·cos b + i·cosh a·sin b.
func (z *Complex) Sinh() *Complex {
	a, b := z.re, z.im

	return z.assign(SinhReal(a)*math.Cos(b), CoshReal(a)*math.Sin(b))
}

// Cosh sets z to cosh(a+bi) = cosh a·cos b + i·sinh a·sin b.
func (z *Complex) Cosh() *Complex {
	a, b := z.re, z.im

	return z.assign(CoshReal(a)*math.Cos(b), SinhReal(a)*math.Sin(b))
}

// Tanh sets z to tanh(a+bi) = (sinh 2a + i·sin 2b) / (cosh 2a + cos 2b).
func (z *Complex) Tanh() *Complex {
	a, b := z.re, z.im
	d := CoshReal(2*a) + math.Cos(2*b)

	return z.assign(SinhReal(2*a)/d, math.Sin(2*b)/d)
}
