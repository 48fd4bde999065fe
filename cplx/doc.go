// Package cplx provides Complex, a mutable complex number with fluent,
// chainable operations and an optional immutability lock.
//
// 🚀 What is a Complex?
//
//	A pair of float64 parts (re, im). Operations write their result back into
//	the receiver and return it, so calls chain:
//
//	  z := cplx.New(2, 3)
//	  z.Conjugate().Negate()        // z is now -2+3i
//
// ✨ Key features:
//   - rectangular and polar construction (New, NewPolar, SetPolarCoords)
//   - arithmetic on loosely typed operands: *Complex, complex128, Go numbers,
//     or strings such as "3+2i", "-4i", "i" (see FromValue)
//   - exp, log (any branch), pow, sqrt, sin/cos/tan, sinh/cosh/tanh
//   - decimal rounding (SetPrecision, SetFixed)
//   - exact (Equals) and tolerance-based (AlmostEquals) comparison
//   - text and YAML encodings
//
// 🔒 Finalize:
//
//	Finalize locks a value. A locked value never changes again; every
//	operation that would write it returns a brand-new, unlocked Complex:
//
//	  one := cplx.New(1, 0).Finalize()
//	  two, _ := one.Add(1)          // one is still 1, two is 2
//
// ⚠️ Errors:
//
//	Argument failures are *cplx.Error values matching ErrNotNumeric,
//	ErrInvalidType or ErrOutOfRange with errors.Is. Their text comes from
//	package messages and can be re-rendered with a custom catalog.
//	Arithmetic itself never fails: division by zero yields ±Inf/NaN.
//
// Performance:
//
//   - Every operation is O(1) and allocation-free on an unlocked receiver,
//     except operand coercion (one small allocation) and string grammar
//     parsing.
//
// Complex does no locking; guard shared mutable instances externally.
package cplx
