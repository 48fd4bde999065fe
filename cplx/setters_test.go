package cplx_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/complexes/cplx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSetRe sets the real part and returns the receiver.
func TestSetRe(t *testing.T) {
	z := cplx.Zero()
	got, err := z.SetRe(5)
	require.NoError(t, err)
	require.Same(t, z, got)
	requireParts(t, z, 5, 0)
}

// TestSetIm sets the imaginary part and returns the receiver.
func TestSetIm(t *testing.T) {
	z := cplx.Zero()
	got, err := z.SetIm(3)
	require.NoError(t, err)
	require.Same(t, z, got)
	requireParts(t, z, 0, 3)
}

// TestSetters_RejectNaN verifies labels, sentinels and that nothing is written.
func TestSetters_RejectNaN(t *testing.T) {
	nan := math.NaN()
	cases := []struct {
		name string
		call func(z *cplx.Complex) (*cplx.Complex, error)
		msg  string
	}{
		{"SetRe", func(z *cplx.Complex) (*cplx.Complex, error) { return z.SetRe(nan) },
			"Specified real value must be a number."},
		{"SetIm", func(z *cplx.Complex) (*cplx.Complex, error) { return z.SetIm(nan) },
			"Specified imaginary value must be a number."},
		{"SetRectCoords/re", func(z *cplx.Complex) (*cplx.Complex, error) { return z.SetRectCoords(nan, 3) },
			"Specified real value and imaginary value must be a number."},
		{"SetRectCoords/im", func(z *cplx.Complex) (*cplx.Complex, error) { return z.SetRectCoords(1, nan) },
			"Specified real value and imaginary value must be a number."},
		{"SetPolarCoords/r", func(z *cplx.Complex) (*cplx.Complex, error) { return z.SetPolarCoords(nan, 2) },
			"Specified r(radius) value and phi(angle) value must be a number."},
		{"SetPolarCoords/phi", func(z *cplx.Complex) (*cplx.Complex, error) { return z.SetPolarCoords(1, nan) },
			"Specified r(radius) value and phi(angle) value must be a number."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			z := cplx.New(1.5, -2.5)
			_, err := tc.call(z)
			require.ErrorIs(t, err, cplx.ErrNotNumeric)
			assert.EqualError(t, err, tc.msg)
			requireParts(t, z, 1.5, -2.5)
		})
	}
}

// TestSetRectCoords assigns both parts.
func TestSetRectCoords(t *testing.T) {
	z := cplx.Zero()
	got, err := z.SetRectCoords(3, 4)
	require.NoError(t, err)
	require.Same(t, z, got)
	requireParts(t, z, 3, 4)
}

// TestSetters_RejectInf treats infinities as non-finite input.
func TestSetters_RejectInf(t *testing.T) {
	inf := math.Inf(1)
	calls := map[string]func(z *cplx.Complex) (*cplx.Complex, error){
		"SetRe":          func(z *cplx.Complex) (*cplx.Complex, error) { return z.SetRe(inf) },
		"SetIm":          func(z *cplx.Complex) (*cplx.Complex, error) { return z.SetIm(-inf) },
		"SetRectCoords":  func(z *cplx.Complex) (*cplx.Complex, error) { return z.SetRectCoords(inf, -inf) },
		"SetPolarCoords": func(z *cplx.Complex) (*cplx.Complex, error) { return z.SetPolarCoords(inf, 0) },
		"NewPolar":       func(*cplx.Complex) (*cplx.Complex, error) { return cplx.NewPolar(1, -inf) },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			z := cplx.New(1.5, -2.5)
			_, err := call(z)
			require.ErrorIs(t, err, cplx.ErrNotNumeric)
			requireParts(t, z, 1.5, -2.5)
		})
	}
}

// TestDivide_StillProducesInf: only the public setters check finiteness.
func TestDivide_StillProducesInf(t *testing.T) {
	z, err := cplx.New(1, 0).Divide(1e-200)
	require.NoError(t, err)
	assert.True(t, math.IsInf(z.Re(), 1))

	z = cplx.New(1000, 0).Exp()
	assert.True(t, math.IsInf(z.Re(), 1))
}

// TestSetPolarCoords converts 45° on the unit circle.
func TestSetPolarCoords(t *testing.T) {
	z, err := cplx.Zero().SetPolarCoords(1, math.Pi/4)
	require.NoError(t, err)
	requireNear(t, z, math.Sqrt2/2, math.Sqrt2/2, tol)
}

// TestSetPolarCoords_RoundTrip rebuilds non-zero values from magnitude and angle.
func TestSetPolarCoords_RoundTrip(t *testing.T) {
	for _, src := range []*cplx.Complex{
		cplx.New(3, 4), cplx.New(-2, -2), cplx.New(0, -1), cplx.New(1e-3, 7), cplx.New(-5, 0),
	} {
		got, err := src.Clone().SetPolarCoords(src.Magnitude(), src.Angle())
		require.NoError(t, err)
		ok, err := got.AlmostEquals(src)
		require.NoError(t, err)
		assert.True(t, ok, "round trip of %v gave %v", src, got)
	}
}

// TestSetPrecision rounds to significant digits.
func TestSetPrecision(t *testing.T) {
	z, err := cplx.New(1.234567, 2.345678).SetPrecision(2)
	require.NoError(t, err)
	requireParts(t, z, 1.2, 2.3)

	z, err = cplx.New(123456, -0.000123456).SetPrecision(3)
	require.NoError(t, err)
	requireParts(t, z, 123000, -0.000123)
}

// TestSetPrecision_TiesAwayFromZero covers exact decimal ties.
func TestSetPrecision_TiesAwayFromZero(t *testing.T) {
	z, err := cplx.New(2.5, -2.5).SetPrecision(1)
	require.NoError(t, err)
	requireParts(t, z, 3, -3)

	z, err = cplx.New(1.25, 9.5).SetPrecision(2)
	require.NoError(t, err)
	requireParts(t, z, 1.3, 9.5)

	z, err = cplx.New(9.5, 0).SetPrecision(1)
	require.NoError(t, err)
	requireParts(t, z, 10, 0)

	// -1.45 is stored as -1.44999999999999995559..., which is not a tie.
	z, err = cplx.New(-1.45, 0.5).SetPrecision(2)
	require.NoError(t, err)
	requireParts(t, z, -1.4, 0.5)
}

// TestSetPrecision_ExtremeMagnitudes keeps subnormal and huge parts intact.
func TestSetPrecision_ExtremeMagnitudes(t *testing.T) {
	z, err := cplx.New(math.SmallestNonzeroFloat64, math.MaxFloat64).SetPrecision(1)
	require.NoError(t, err)
	requireParts(t, z, math.SmallestNonzeroFloat64, math.Inf(1))

	z, err = cplx.New(1e300, -3e-300).SetPrecision(1)
	require.NoError(t, err)
	requireParts(t, z, 1e300, -3e-300)
}

// TestSetFixed rounds to decimal places.
func TestSetFixed(t *testing.T) {
	z, err := cplx.New(math.Pi, math.E).SetFixed(4)
	require.NoError(t, err)
	requireParts(t, z, 3.1416, 2.7183)
}

// TestSetFixed_Ties checks ties away from zero and values that only look like ties.
func TestSetFixed_Ties(t *testing.T) {
	z, err := cplx.New(0.5, -0.5).SetFixed(0)
	require.NoError(t, err)
	requireParts(t, z, 1, -1)

	z, err = cplx.New(2.5, 0.125).SetFixed(0)
	require.NoError(t, err)
	requireParts(t, z, 3, 0)

	// 1.005 is stored as 1.00499999999999989..., so it rounds down.
	z, err = cplx.New(1.005, 0.125).SetFixed(2)
	require.NoError(t, err)
	requireParts(t, z, 1, 0.13)

	// 1.045 is stored as 1.04499999999999992894...
	z, err = cplx.New(1.045, -0.375).SetFixed(2)
	require.NoError(t, err)
	requireParts(t, z, 1.04, -0.38)

	z, err = cplx.New(-1e-300, 99.995).SetFixed(3)
	require.NoError(t, err)
	requireParts(t, z, 0, 99.995)
}

// TestSetFixed_LargeAndSpecialValuesUntouched passes huge, NaN and Inf parts through.
func TestSetFixed_LargeAndSpecialValuesUntouched(t *testing.T) {
	z, err := cplx.New(1e22, 0.123).SetFixed(1)
	require.NoError(t, err)
	requireParts(t, z, 1e22, 0.1)

	z, err = cplx.New(math.Inf(1), 0).Divide(0)
	require.NoError(t, err)
	z, err = z.SetFixed(2)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(z.Re()))
}

// TestRounding_OutOfRange rejects unsupported digit counts without writing.
func TestRounding_OutOfRange(t *testing.T) {
	z := cplx.New(1.23, 4.56)

	for _, p := range []int{0, -1, 101} {
		_, err := z.SetPrecision(p)
		require.ErrorIs(t, err, cplx.ErrOutOfRange, "precision %d", p)
		assert.EqualError(t, err, "Specified precision value is out of range.")
	}
	for _, d := range []int{-1, 101} {
		_, err := z.SetFixed(d)
		require.ErrorIs(t, err, cplx.ErrOutOfRange, "digits %d", d)
		assert.EqualError(t, err, "Specified digs value is out of range.")
	}
	requireParts(t, z, 1.23, 4.56)
}

// TestError_AsAndRender inspects the structured error.
func TestError_AsAndRender(t *testing.T) {
	_, err := cplx.Zero().SetRe(math.NaN())

	var ce *cplx.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "Specified real value", ce.Label)
	assert.Equal(t, "errNotNumeric", ce.Key)

	de := func(key string, subs ...any) string { return key + ":" + subs[0].(string) }
	assert.Equal(t, "errNotNumeric:Specified real value", ce.Render(de))
	assert.Equal(t, ce.Error(), ce.Render(nil))
}
