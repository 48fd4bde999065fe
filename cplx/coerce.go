// SPDX-License-Identifier: MIT

package cplx

import (
	"reflect"
	"regexp"
	"strconv"

	"github.com/spf13/cast"
)

// imaginaryUnit is accepted as shorthand for 0+1i.
const imaginaryUnit = "i"

// narrowGrammar recognizes one optional unsigned integer real term followed
// by one signed imaginary term ending in i or j. It is unanchored: the first
// matching substring wins, anything around it is ignored.
var narrowGrammar = regexp.MustCompile(`(\d+)?([+-]\d*)[ij]`)

// FromValue returns a new Complex derived from v. The result never shares
// state with v and is never finalized.
//
// Accepted inputs:
//   - *Complex, Complex: copy of (re, im).
//   - complex128, complex64: (real, imag).
//   - string: "i", or text matching (\d+)?([+-]\d*)[ij] such as "3+2i",
//     "-4i", "+i", "12-34j". A bare sign means ±1; a missing real term means 0.
//   - any Go integer or float kind: (v, 0), named types included.
//   - named complex and string types, as their underlying kind.
//
// Errors: ErrInvalidType for everything else, including bool, nil and
// strings outside the grammar ("5", "1.5+2.5i", "(1+2i)").
func FromValue(v any) (*Complex, error) {
	switch t := v.(type) {
	case *Complex:
		if t != nil {
			return New(t.re, t.im), nil
		}
	case Complex:
		return New(t.re, t.im), nil
	case complex128:
		return New(real(t), imag(t)), nil
	case complex64:
		return New(float64(real(t)), float64(imag(t))), nil
	case string:
		if z, ok := parseNarrow(t); ok {
			return z, nil
		}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		if f, err := cast.ToFloat64E(t); err == nil {
			return New(f, 0), nil
		}
	default:
		return fromKind(reflect.ValueOf(v))
	}

	return nil, invalidType(labelValue)
}

// fromKind handles named types by their underlying kind,
// e.g. type ohm float64 or type phasor complex128.
func fromKind(rv reflect.Value) (*Complex, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return New(float64(rv.Int()), 0), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return New(float64(rv.Uint()), 0), nil
	case reflect.Float32, reflect.Float64:
		return New(rv.Float(), 0), nil
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()

		return New(real(c), imag(c)), nil
	case reflect.String:
		if z, ok := parseNarrow(rv.String()); ok {
			return z, nil
		}
	}

	return nil, invalidType(labelValue)
}

// parseNarrow applies narrowGrammar to s.
func parseNarrow(s string) (*Complex, bool) {
	if s == imaginaryUnit {
		s = "0+1i"
	}
	m := narrowGrammar.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	// Unparsable or empty groups count as 0; overflow yields ±Inf.
	re, _ := strconv.ParseFloat(m[1], 64)
	imText := m[2]
	if imText == "+" || imText == "-" {
		imText += "1"
	}
	im, _ := strconv.ParseFloat(imText, 64)

	return New(re, im), true
}

// Must returns z or panics with err. Intended for constant operands and
// tests, in the spirit of regexp.MustCompile.
func Must(z *Complex, err error) *Complex {
	if err != nil {
		panic(err)
	}

	return z
}
