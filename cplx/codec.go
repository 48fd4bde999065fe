// SPDX-License-Identifier: MIT

// Package cplx - text and YAML encodings.
//
// The text form is Go's complex literal syntax as produced by
// strconv.FormatComplex, e.g. "(1.5-2i)"; it round-trips every float64 pair
// including NaN and ±Inf. Decoding also accepts plain reals ("5") and falls
// back to the FromValue string grammar ("3+2i", "i").
//
// YAML accepts a scalar (text form or a number) or a mapping {re: .., im: ..}.
package cplx

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = Complex{}
	_ yaml.Unmarshaler = (*Complex)(nil)
)

// MarshalText implements encoding.TextMarshaler.
func (z Complex) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatComplex(complex(z.re, z.im), 'g', -1, 128)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Errors: ErrFinalized on a finalized receiver, ErrInvalidType on bad text.
func (z *Complex) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if c, err := strconv.ParseComplex(s, 128); err == nil {
		return z.decodeInto(real(c), imag(c))
	}
	w, ok := parseNarrow(s)
	if !ok {
		return invalidType(labelValue)
	}

	return z.decodeInto(w.re, w.im)
}

// MarshalYAML implements yaml.Marshaler using the text form.
func (z Complex) MarshalYAML() (any, error) {
	b, err := z.MarshalText()
	if err != nil {
		return nil, err
	}

	return string(b), nil
}

// yamlParts is the mapping form accepted by UnmarshalYAML.
type yamlParts struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (z *Complex) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return err
		}
		if s, ok := v.(string); ok {
			return z.UnmarshalText([]byte(s))
		}
		w, err := FromValue(v)
		if err != nil {
			return err
		}

		return z.decodeInto(w.re, w.im)
	case yaml.MappingNode:
		var p yamlParts
		if err := node.Decode(&p); err != nil {
			return err
		}

		return z.decodeInto(p.Re, p.Im)
	default:
		return invalidType(labelValue)
	}
}

// decodeInto writes a decoded value. Decoders have no way to hand back a
// new instance, so a finalized receiver is an error here.
func (z *Complex) decodeInto(re, im float64) error {
	if z.locked {
		return ErrFinalized
	}
	z.re, z.im = re, im

	return nil
}
