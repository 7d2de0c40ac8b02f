package rpncalc

import "math"

// function is a function of one real argument.
type function struct {
	// name identifies the function in error messages.
	name string
	// f computes the function. Its second result is false if x is outside
	// the function's domain.
	f func(x float64) (float64, bool)
	// domain describes the valid arguments of a partial function.
	domain string
}

// functions contains the functions that TokenFunction tokens may name.
var functions = map[string]function{
	"sin": {name: "sin", f: monadic(math.Sin)},
	"cos": {name: "cos", f: monadic(math.Cos)},
	"!":   {name: "factorial", f: factorial, domain: "non-negative integer"},
}

// monadic wraps a function defined on all reals.
func monadic(f func(float64) float64) func(float64) (float64, bool) {
	return func(x float64) (float64, bool) {
		return f(x), true
	}
}

// factorial computes x! by repeated multiplication. The result is false if x
// is negative or not an integer. Multiplication stops once the product
// overflows to +Inf.
func factorial(x float64) (float64, bool) {
	if x < 0 || math.Floor(x) != x {
		return 0, false
	}
	r := 1.0
	for i := 2.0; i <= x && !math.IsInf(r, 1); i++ {
		r *= i
	}
	return r, true
}
