// SPDX-License-Identifier: MIT

package cplx

import "math"

// Multiply sets z to z·w, where w is v coerced by FromValue.
//
//	(a+bi)(c+di) = (ac−bd) + (ad+bc)i
func (z *Complex) Multiply(v any) (*Complex, error) {
	w, err := FromValue(v)
	if err != nil {
		return z, err
	}

	return z.assign(z.re*w.re-z.im*w.im, z.im*w.re+z.re*w.im), nil
}

// Divide sets z to z/w, where w is v coerced by FromValue.
//
//	(a+bi)/(c+di) = ((ac+bd) + (bc−ad)i) / (c²+d²)
//
// Division by zero is not rejected: the parts become ±Inf or NaN exactly as
// float64 division produces them.
func (z *Complex) Divide(v any) (*Complex, error) {
	w, err := FromValue(v)
	if err != nil {
		return z, err
	}
	div := w.re*w.re + w.im*w.im

	return z.assign((z.re*w.re+z.im*w.im)/div, (z.im*w.re-z.re*w.im)/div), nil
}

// Add sets z to z+w, where w is v coerced by FromValue.
func (z *Complex) Add(v any) (*Complex, error) {
	w, err := FromValue(v)
	if err != nil {
		return z, err
	}

	return z.assign(z.re+w.re, z.im+w.im), nil
}

// Subtract sets z to z−w, where w is v coerced by FromValue.
func (z *Complex) Subtract(v any) (*Complex, error) {
	w, err := FromValue(v)
	if err != nil {
		return z, err
	}

	return z.assign(z.re-w.re, z.im-w.im), nil
}

// Conjugate sets z to re − im·i.
func (z *Complex) Conjugate() *Complex {
	return z.assign(z.re, -z.im)
}

// Negate sets z to −re − im·i.
func (z *Complex) Negate() *Complex {
	return z.assign(-z.re, -z.im)
}

// Clone returns an independent, unlocked copy of z.
func (z *Complex) Clone() *Complex {
	return New(z.re, z.im)
}

// Equals reports whether v, coerced by FromValue, has exactly the same parts
// as z. Comparison is IEEE ==, so NaN never equals anything and 0 == -0.
func (z *Complex) Equals(v any) (bool, error) {
	w, err := FromValue(v)
	if err != nil {
		return false, err
	}

	return w.re == z.re && w.im == z.im, nil
}

// AlmostEquals reports whether both parts of v (coerced by FromValue) lie
// within an absolute tolerance of z's parts. The tolerance defaults to
// DefaultEpsilon and is set with WithEpsilon.
func (z *Complex) AlmostEquals(v any, opts ...Option) (bool, error) {
	w, err := FromValue(v)
	if err != nil {
		return false, err
	}
	o := gatherOptions(opts...)

	return closeTo(z.re, w.re, o.eps) && closeTo(z.im, w.im, o.eps), nil
}

// closeTo treats equal values (including equal infinities) as close.
func closeTo(a, b, eps float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= eps
}
