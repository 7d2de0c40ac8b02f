package rpncalc

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	num := func(text string, v float64, pos int) Token {
		return Token{Kind: TokenNumber, Text: text, Num: v, Pos: pos}
	}
	tk := func(kind TokenKind, text string, pos int) Token {
		return Token{Kind: kind, Text: text, Pos: pos}
	}
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		// spaces
		{"empty", "", nil},
		{"spaces", " \t \r\n ", nil},
		// numbers
		{"zero", "0", []Token{num("0", 0, 1)}},
		{"int", "9876543210", []Token{num("9876543210", 9876543210, 1)}},
		{"reals", "3.14 42", []Token{num("3.14", 3.14, 1), num("42", 42, 6)}},
		{"trailing-dot", "1.", []Token{num("1.", 1, 1)}},
		{"ident-after-num", "2x", []Token{num("2", 2, 1), tk(TokenVariable, "x", 2)}},
		// identifiers
		{"names", "x_1 _y PI sin cos", []Token{
			tk(TokenVariable, "x_1", 1),
			tk(TokenVariable, "_y", 5),
			tk(TokenConstant, "PI", 8),
			tk(TokenFunction, "sin", 11),
			tk(TokenFunction, "cos", 15),
		}},
		{"pi-lower", "pi", []Token{tk(TokenVariable, "pi", 1)}},
		{"unicode", "π", []Token{tk(TokenVariable, "π", 1)}},
		// operators
		{"ops", "1+2-3*4/5^6", []Token{
			num("1", 1, 1), tk(TokenOperator, "+", 2),
			num("2", 2, 3), tk(TokenOperator, "-", 4),
			num("3", 3, 5), tk(TokenOperator, "*", 6),
			num("4", 4, 7), tk(TokenOperator, "/", 8),
			num("5", 5, 9), tk(TokenOperator, "^", 10),
			num("6", 6, 11),
		}},
		{"factorial", "5! - 1", []Token{
			num("5", 5, 1), tk(TokenFunction, "!", 2),
			tk(TokenOperator, "-", 4), num("1", 1, 6),
		}},
		// unary minus
		{"neg", "-5", []Token{tk(TokenUnary, "neg", 1), num("5", 5, 2)}},
		{"neg-neg", "--5", []Token{tk(TokenUnary, "neg", 1), tk(TokenUnary, "neg", 2), num("5", 5, 3)}},
		{"sub-neg", "2--3", []Token{
			num("2", 2, 1), tk(TokenOperator, "-", 2),
			tk(TokenUnary, "neg", 3), num("3", 3, 4),
		}},
		{"bracket-neg", "(-x)", []Token{
			tk(TokenLeftBracket, "(", 1), tk(TokenUnary, "neg", 2),
			tk(TokenVariable, "x", 3), tk(TokenRightBracket, ")", 4),
		}},
		{"func-neg", "sin -x", []Token{
			tk(TokenFunction, "sin", 1), tk(TokenUnary, "neg", 5), tk(TokenVariable, "x", 6),
		}},
		{"sub", "x - y", []Token{
			tk(TokenVariable, "x", 1), tk(TokenOperator, "-", 3), tk(TokenVariable, "y", 5),
		}},
		{"close-sub", "(x)-y", []Token{
			tk(TokenLeftBracket, "(", 1), tk(TokenVariable, "x", 2),
			tk(TokenRightBracket, ")", 3), tk(TokenOperator, "-", 4),
			tk(TokenVariable, "y", 5),
		}},
		// brackets
		{"brackets", "([{}])", []Token{
			tk(TokenLeftBracket, "(", 1), tk(TokenLeftBracket, "[", 2),
			tk(TokenLeftBracket, "{", 3), tk(TokenRightBracket, "}", 4),
			tk(TokenRightBracket, "]", 5), tk(TokenRightBracket, ")", 6),
		}},
		{"comma", "a,b", []Token{
			tk(TokenVariable, "a", 1), tk(TokenComma, ",", 2), tk(TokenVariable, "b", 3),
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("scanning %q: unexpected error %v", c.src, err)
			}
			if len(got) != len(c.tokens) {
				t.Fatalf("scanning %q: want %v, got %v", c.src, c.tokens, got)
			}
			for i, want := range c.tokens {
				if got[i] != want {
					t.Errorf("scanning %q: token %d: want %#v, got %#v", c.src, i, want, got[i])
				}
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
		msg  string
	}{
		{"at", "3 @ 4", 3, "unexpected character: @"},
		{"dollar", "$", 1, "unexpected character: $"},
		{"second-dot", "1.2.3", 4, "unexpected character: ."},
		{"leading-dot", ".5", 1, "unexpected character: ."},
		{"semicolon", "a;b", 2, "unexpected character: ;"},
		{"overflow", strings.Repeat("9", 400), 1, "invalid number: "},
		{"prefix-fact", "!5", 1, "unexpected character: !"},
		{"fact-after-op", "2 + !3", 5, "unexpected character: !"},
		{"fact-after-bracket", "(!3)", 2, "unexpected character: !"},
		{"fact-after-func", "sin !3", 5, "unexpected character: !"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err == nil {
				t.Fatalf("scanning %q: expected error, got %v", c.src, toks)
			}
			if toks != nil {
				t.Errorf("scanning %q: got tokens %v with error", c.src, toks)
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("scanning %q: error was %#v, not SyntaxError", c.src, err)
			}
			if se.Pos() != c.col {
				t.Errorf("scanning %q: wrong position: want %d, got %d", c.src, c.col, se.Pos())
			}
			if !strings.HasPrefix(se.Msg, c.msg) {
				t.Errorf("scanning %q: wrong message: want %q, got %q", c.src, c.msg, se.Msg)
			}
			if !strings.HasPrefix(err.Error(), "syntax error") {
				t.Errorf("scanning %q: %q doesn't name its kind", c.src, err.Error())
			}
		})
	}
}

func TestLexNumbers(t *testing.T) {
	nums := []float64{0, 1, 42, 3.14, 0.5, 1234567.875, 1e10, 0.1, 2.718281828459045}
	for _, n := range nums {
		src := strconv.FormatFloat(n, 'f', -1, 64)
		toks, err := Tokenize(src)
		if err != nil {
			t.Errorf("scanning %q: %v", src, err)
			continue
		}
		if len(toks) != 1 || toks[0].Kind != TokenNumber {
			t.Errorf("scanning %q: want one number, got %v", src, toks)
			continue
		}
		if toks[0].Num != n {
			t.Errorf("scanning %q: want %v, got %v", src, n, toks[0].Num)
		}
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: TokenNumber, Text: "3.0", Num: 3}, "3"},
		{Token{Kind: TokenNumber, Text: "2.50", Num: 2.5}, "2.5"},
		{Token{Kind: TokenOperator, Text: "+"}, "+"},
		{Token{Kind: TokenUnary, Text: "neg"}, "neg"},
		{Token{Kind: TokenConstant, Text: "PI"}, "PI"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("%#v: want %q, got %q", c.tok, c.want, got)
		}
	}
	if got := TokenLeftBracket.String(); got != "LeftBracket" {
		t.Errorf("TokenLeftBracket: got %q", got)
	}
	if got := TokenKind(99).String(); got != "TokenKind(99)" {
		t.Errorf("TokenKind(99): got %q", got)
	}
}
