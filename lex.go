package rpncalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical token of an expression. Tokens are values and are never
// modified after the tokenizer creates them.
type Token struct {
	// Kind is the kind of the token.
	Kind TokenKind
	// Text is the lexeme the token was scanned from. Unary minus has the
	// text "neg" to keep it distinct from subtraction.
	Text string
	// Num is the value of a number token. It is zero for all other kinds.
	Num float64
	// Pos is the column of the first rune of the token, counting from 1.
	Pos int
}

// String returns the value of a number token or the lexeme of any other token.
func (t Token) String() string {
	if t.Kind == TokenNumber {
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	}
	return t.Text
}

// TokenKind is the kind of a lexical token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenNumber is a numeric literal. It is the only kind with a value.
	TokenNumber
	// TokenOperator is a binary operator, one of + - * / ^.
	TokenOperator
	// TokenFunction is sin, cos, or the postfix factorial !.
	TokenFunction
	// TokenConstant is a named constant, i.e. PI.
	TokenConstant
	// TokenVariable is any other name.
	TokenVariable
	// TokenLeftBracket is an open bracket, e.g. (.
	TokenLeftBracket
	// TokenRightBracket is a close bracket, e.g. ).
	TokenRightBracket
	// TokenComma is a comma. Commas are always rejected by ToPostfix.
	TokenComma
	// TokenUnary is a minus sign in operand position.
	TokenUnary
)

//go:generate go run golang.org/x/tools/cmd/stringer@v0.38.0 -type=TokenKind -trimprefix=Token

// Operators contains the runes which are scanned as binary operators.
const Operators = "+-*/^"

// OpenBrackets and CloseBrackets contain the runes which group expressions.
// A bracket in byte position k in OpenBrackets matches only the bracket in
// byte position k in CloseBrackets.
const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	col  int
	last Token
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. At the end of the input, the
// result is an empty token with io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		tok := Token{Pos: l.col}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			if err := l.scanNum(&tok); err != nil {
				return Token{}, err
			}
		case r == '_', unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanIdent(); err != nil {
				return Token{}, err
			}
			tok.Text = l.buf.String()
			tok.Kind = identKind(tok.Text)
		case r == '-' && l.wantOperand():
			tok.Text = "neg"
			tok.Kind = TokenUnary
		case strings.ContainsRune(Operators, r):
			tok.Text = string(r)
			tok.Kind = TokenOperator
		case r == '!' && l.wantOperand():
			return Token{}, &SyntaxError{Col: tok.Pos, Msg: "unexpected character: !"}
		case r == '!':
			tok.Text = "!"
			tok.Kind = TokenFunction
		case strings.ContainsRune(OpenBrackets, r):
			tok.Text = string(r)
			tok.Kind = TokenLeftBracket
		case strings.ContainsRune(CloseBrackets, r):
			tok.Text = string(r)
			tok.Kind = TokenRightBracket
		case r == ',':
			tok.Text = ","
			tok.Kind = TokenComma
		default:
			return Token{}, &SyntaxError{Col: tok.Pos, Msg: "unexpected character: " + string(r)}
		}
		l.last = tok
		return tok, nil
	}
}

// wantOperand returns whether the previously scanned token leaves the lexer
// at a position where an operand must follow.
func (l *lexer) wantOperand() bool {
	switch l.last.Kind {
	case TokenNone, TokenOperator, TokenUnary, TokenLeftBracket, TokenComma:
		return true
	case TokenFunction:
		// Factorial is postfix, so whatever follows it is binary.
		return l.last.Text != "!"
	default:
		return false
	}
}

// scanNum scans a run of digits containing at most one decimal point. A
// second point ends the number.
func (l *lexer) scanNum(tok *Token) error {
	dot := false
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if r == '.' && !dot {
			dot = true
		} else if r < '0' || '9' < r {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	text := l.buf.String()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return &SyntaxError{Col: tok.Pos, Msg: "invalid number: " + text}
	}
	tok.Text = text
	tok.Num = v
	tok.Kind = TokenNumber
	return nil
}

func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides ident scanning before
				// calling scanIdent, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		switch {
		case r == '_', unicode.IsLetter(r), unicode.IsDigit(r):
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			return nil
		}
	}
}

// identKind classifies an identifier.
func identKind(name string) TokenKind {
	switch name {
	case "PI":
		return TokenConstant
	case "sin", "cos":
		return TokenFunction
	default:
		return TokenVariable
	}
}

// Lex scans all tokens from src.
func Lex(src io.RuneScanner) ([]Token, error) {
	l := lex(src)
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// Tokenize is a shortcut to scan all tokens from a string.
func Tokenize(src string) ([]Token, error) {
	return Lex(strings.NewReader(src))
}
