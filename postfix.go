package rpncalc

import (
	"strconv"
	"strings"
)

// Postfix is an expression in postfix order, ready to evaluate with a Context.
type Postfix []Token

// String formats the expression with tokens separated by single spaces, e.g.
// "3 4 +".
func (p Postfix) String() string {
	var b strings.Builder
	for i, tok := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// popsBefore returns whether an operator already on the stack must be output
// before pushing next.
func (top operator) popsBefore(next operator) bool {
	if top.prec != next.prec {
		return top.prec > next.prec
	}
	return !next.right
}

// operators is the precedence table. Unary minus sits between the
// multiplicative operators and exponentiation, so "-2^2" is "-(2^2)" while
// "-2*3" is "(-2)*3".
var operators = map[string]operator{
	"!":   {50, true},
	"sin": {50, false},
	"cos": {50, false},
	"^":   {40, true},
	"neg": {35, true},
	"*":   {30, false},
	"/":   {30, false},
	"+":   {20, false},
	"-":   {20, false},
}

// precedence gets the operator for a token. Tokens which are not operators
// have precedence 0.
func precedence(tok Token) operator {
	return operators[tok.Text]
}

// stacked returns whether a token of kind k on the operator stack takes part
// in precedence resolution.
func stacked(k TokenKind) bool {
	return k == TokenOperator || k == TokenFunction || k == TokenUnary
}

// ToPostfix reorders tokens into postfix order using the shunting-yard
// algorithm. Brackets are consumed. Commas are always an error, as are
// brackets which do not match.
func ToPostfix(tokens []Token) (Postfix, error) {
	out := make(Postfix, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNumber, TokenConstant, TokenVariable:
			out = append(out, tok)
		case TokenFunction, TokenUnary, TokenLeftBracket:
			// Functions and unary minus are prefix, so there is nothing to
			// their left to resolve. Factorial is postfix, but its operand
			// is already in the output.
			stack = append(stack, tok)
		case TokenOperator:
			op := precedence(tok)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if !stacked(top.Kind) || !precedence(top).popsBefore(op) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case TokenRightBracket:
			open, err := leftbracket(tok)
			if err != nil {
				return nil, err
			}
			for {
				if len(stack) == 0 {
					return nil, &SyntaxError{Col: tok.Pos, Msg: "mismatched brackets: " + tok.Text + " with no open bracket"}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenLeftBracket {
					if top.Text != open {
						return nil, &SyntaxError{Col: tok.Pos, Msg: "mismatched brackets: " + top.Text + "expr" + tok.Text}
					}
					break
				}
				out = append(out, top)
			}
			// f(x) -> x f
			if n := len(stack); n > 0 && stack[n-1].Kind == TokenFunction {
				out = append(out, stack[n-1])
				stack = stack[:n-1]
			}
		case TokenComma:
			return nil, &SyntaxError{Col: tok.Pos, Msg: "comma not supported"}
		default:
			return nil, &SyntaxError{Col: tok.Pos, Msg: "unknown token " + strconv.Quote(tok.String())}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenLeftBracket {
			return nil, &SyntaxError{Col: top.Pos, Msg: "mismatched brackets: " + top.Text + " with no close bracket"}
		}
		out = append(out, top)
	}
	return out, nil
}

// leftbracket gets the opening bracket matching a close bracket token.
func leftbracket(tok Token) (string, error) {
	k := strings.Index(CloseBrackets, tok.Text)
	if k < 0 || len(tok.Text) != 1 {
		return "", &SyntaxError{Col: tok.Pos, Msg: "invalid bracket " + strconv.Quote(tok.Text)}
	}
	return OpenBrackets[k : k+1], nil
}

// Parse scans and converts an expression so it can be evaluated with a
// context.
func Parse(src string) (Postfix, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ToPostfix(toks)
}
