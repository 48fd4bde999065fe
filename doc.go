// Package complexes is a small complex-number toolkit: a fluent,
// lockable Complex value with arithmetic, elementary functions, rounding,
// formatting and encodings.
//
// Under the hood, everything is organized under two subpackages:
//
//	cplx/       the Complex value type: construction, arithmetic, exp/log/pow/sqrt,
//	            trigonometric & hyperbolic functions, formatting, text & YAML codecs
//	messages/   the message catalog used to render error text ({0}-style templates)
//
// Quick example:
//
//	z := cplx.New(3, 4)
//	fmt.Println(z.Magnitude())            // 5
//	cplx.Must(z.Multiply("2+4i"))         // z = -10+20i
//	fmt.Println(z)                        // -10+20i
//
//	go get github.com/katalvlaran/complexes/cplx
package complexes
