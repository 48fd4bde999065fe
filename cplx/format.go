// SPDX-License-Identifier: MIT

package cplx

import (
	"math"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtUnit     = "i"
	_fmtPlus     = "+"
	_fmtMinus    = "-"
	_fmtZero     = "0"
	_fmtPolarSep = " "
	_fmtNaN      = "NaN"
	_fmtInf      = "Inf"
)

// Plain decimal notation is used for magnitudes in [plainMin, plainMax).
const (
	plainMin = 1e-6
	plainMax = 1e21
)

// String renders z in rectangular form "a±bi".
//
// Rules:
//   - a zero real part is omitted;
//   - the sign is written when both parts are present, or when the
//     imaginary part is negative;
//   - an imaginary magnitude of 1 is written as just "i";
//   - a zero imaginary part is omitted;
//   - 0+0i renders as "0".
//
// Examples: 3-4i, -3-7i, 2+5i, -i, 4, 0.
func (z Complex) String() string {
	var sb strings.Builder
	a, b := z.re, z.im
	if a != 0 {
		sb.WriteString(formatNumber(a))
	}
	if (a != 0 && b != 0) || b < 0 {
		if b < 0 {
			sb.WriteString(_fmtMinus)
		} else {
			sb.WriteString(_fmtPlus)
		}
	}
	if b != 0 {
		if abs := math.Abs(b); abs != 1 {
			sb.WriteString(formatNumber(abs))
		}
		sb.WriteString(_fmtUnit)
	}
	if sb.Len() == 0 {
		return _fmtZero
	}

	return sb.String()
}

// PolarString renders z as "<magnitude> <angle>", angle in radians.
func (z *Complex) PolarString() string {
	return formatNumber(z.Magnitude()) + _fmtPolarSep + formatNumber(z.Angle())
}

// formatNumber renders x with the fewest digits that parse back to x.
// Exponent notation is used outside [plainMin, plainMax).
func formatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return _fmtNaN
	case math.IsInf(x, 1):
		return _fmtInf
	case math.IsInf(x, -1):
		return _fmtMinus + _fmtInf
	case x == 0:
		return _fmtZero
	}
	if abs := math.Abs(x); abs >= plainMin && abs < plainMax {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	// Exponent without zero padding: 1e-7, 1.5e+300.
	s := strconv.FormatFloat(x, 'e', -1, 64)
	i := strings.IndexByte(s, 'e') + 2

	return s[:i] + strings.TrimLeft(s[i:], _fmtZero)
}
