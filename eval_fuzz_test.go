//go:build go1.18

package rpncalc_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/rpncalc"
)

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("y")
	f.Add("-(2 + sin[x])!")
	f.Add("{1 ^ 2]")
	f.Fuzz(func(t *testing.T, s string) {
		_, err := rpncalc.EvalString(s, rpncalc.SetVar("x", 0))
		var ie rpncalc.InputError
		if err != nil && !errors.As(err, &ie) {
			t.Errorf("%q gave non-input error %#v", s, err)
		}
	})
}

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("1,2")
	f.Add("3 + 4 * 2")
	f.Fuzz(func(t *testing.T, s string) {
		p, err := rpncalc.Parse(s)
		if err != nil {
			return
		}
		for _, tok := range p {
			switch tok.Kind {
			case rpncalc.TokenLeftBracket, rpncalc.TokenRightBracket, rpncalc.TokenComma:
				t.Errorf("%q: postfix %v contains %v", s, p, tok)
			}
		}
	})
}
