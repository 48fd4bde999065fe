// SPDX-License-Identifier: MIT

// Package cplx: functional configuration for tolerance-based comparisons.
//
// Only AlmostEquals consumes options; every other operation has a fixed,
// documented behavior and takes no configuration.
package cplx

import "math"

// DefaultEpsilon is the absolute per-component tolerance used by AlmostEquals.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "cplx: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the absolute tolerance for AlmostEquals.
// Panics when eps is NaN, ±Inf or negative (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

func defaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
