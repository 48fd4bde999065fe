// SPDX-License-Identifier: MIT

package cplx

import (
	"errors"
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Accepted ranges for SetPrecision and SetFixed.
const (
	minPrecision = 1
	maxPrecision = 100
	minDigits    = 0
	maxDigits    = 100

	// fixedLimit: SetFixed leaves magnitudes at or above it untouched.
	fixedLimit = 1e21

	// fixedPrecision covers 21 integer digits plus maxDigits fraction digits.
	fixedPrecision = 128

	// float64 significand width, hidden bit included.
	mantissaBits = 53
)

// roundSignificant rounds x to p significant decimal digits, ties away from zero.
func roundSignificant(x float64, p int) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	ctx := apd.BaseContext.WithPrecision(uint32(p))
	ctx.Rounding = apd.RoundHalfUp

	var d apd.Decimal
	if _, err := ctx.Round(&d, exactDecimal(x)); err != nil {
		return x
	}

	return decimalToFloat(&d, x)
}

// roundFixed rounds x to digits places after the decimal point, ties away
// from zero.
func roundFixed(x float64, digits int) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) >= fixedLimit {
		return x
	}
	ctx := apd.BaseContext.WithPrecision(fixedPrecision)
	ctx.Rounding = apd.RoundHalfUp

	var d apd.Decimal
	if _, err := ctx.Quantize(&d, exactDecimal(x), -int32(digits)); err != nil {
		return x
	}

	return decimalToFloat(&d, x)
}

// exactDecimal returns the exact decimal value of a finite x.
// With x = m·2^e and e < 0, x = m·5^-e · 10^e, so no digit is lost.
func exactDecimal(x float64) *apd.Decimal {
	frac, exp := math.Frexp(math.Abs(x))
	coeff := apd.NewBigInt(int64(math.Ldexp(frac, mantissaBits)))
	exp -= mantissaBits

	var d *apd.Decimal
	if exp >= 0 {
		coeff.Lsh(coeff, uint(exp))
		d = apd.NewWithBigInt(coeff, 0)
	} else {
		pow := apd.NewBigInt(5)
		pow.Exp(pow, apd.NewBigInt(int64(-exp)), nil)
		coeff.Mul(coeff, pow)
		d = apd.NewWithBigInt(coeff, int32(exp))
	}
	d.Negative = x < 0

	return d
}

// decimalToFloat converts d back. A result rounded past MaxFloat64 becomes
// ±Inf; any other parse failure falls back to x.
func decimalToFloat(d *apd.Decimal, x float64) float64 {
	v, err := d.Float64()
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return x
	}

	return v
}
