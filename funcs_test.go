package rpncalc

import (
	"math"
	"testing"
)

func TestFactorial(t *testing.T) {
	cases := []struct {
		x  float64
		r  float64
		ok bool
	}{
		{0, 1, true},
		{1, 1, true},
		{2, 2, true},
		{10, 3628800, true},
		{20, 2432902008176640000, true},
		{170, 7.257415615307994e306, true},
		{171, math.Inf(1), true},
		{1e300, math.Inf(1), true},
		{math.Inf(1), math.Inf(1), true},
		{-1, 0, false},
		{0.5, 0, false},
		{math.Inf(-1), 0, false},
		{math.NaN(), 0, false},
	}
	for _, c := range cases {
		r, ok := factorial(c.x)
		if ok != c.ok {
			t.Errorf("%g!: want ok=%t, got %t", c.x, c.ok, ok)
			continue
		}
		if !ok {
			continue
		}
		if r != c.r && math.Abs(r-c.r) > 1e-12*c.r {
			t.Errorf("%g!: want %g, got %g", c.x, c.r, r)
		}
	}
}

func TestFunctions(t *testing.T) {
	for name, fn := range functions {
		if _, ok := fn.f(1); !ok {
			t.Errorf("%s(1) out of domain", name)
		}
		if fn.name == "" {
			t.Errorf("%s has no name for errors", name)
		}
		if _, ok := operators[name]; !ok {
			t.Errorf("%s has no precedence", name)
		}
	}
}
