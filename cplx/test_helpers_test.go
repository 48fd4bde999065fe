// SPDX-License-Identifier: MIT
// Package cplx_test contains shared test helpers.

package cplx_test

import (
	"testing"

	"github.com/katalvlaran/complexes/cplx"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for results of transcendental functions.
const tol = 1e-9

// requireParts asserts exact (IEEE ==) equality of both parts.
func requireParts(t *testing.T, z *cplx.Complex, re, im float64) {
	t.Helper()
	require.NotNil(t, z)
	require.Equal(t, re, z.Re(), "real part")
	require.Equal(t, im, z.Im(), "imaginary part")
}

// requireNear asserts both parts within delta.
func requireNear(t *testing.T, z *cplx.Complex, re, im, delta float64) {
	t.Helper()
	require.NotNil(t, z)
	require.InDelta(t, re, z.Re(), delta, "real part")
	require.InDelta(t, im, z.Im(), delta, "imaginary part")
}

// requireNearC compares z with a builtin complex128 reference.
func requireNearC(t *testing.T, z *cplx.Complex, want complex128, delta float64) {
	t.Helper()
	requireNear(t, z, real(want), imag(want), delta)
}
