package rpncalc

import "strconv"

// SyntaxError is an error indicating malformed input: an unexpected character,
// an invalid number, mismatched brackets, or a comma. It implements
// InputError.
type SyntaxError struct {
	// Col is the position of the token that caused the error.
	Col int
	// Msg describes the error.
	Msg string
}

func (err *SyntaxError) Error() string {
	return errpos("syntax error", err.Col, err.Msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// MathError is an error indicating a numerically invalid operation on
// well-formed input, i.e. division by zero or a factorial of a negative or
// fractional number. It implements InputError.
type MathError struct {
	// Col is the position of the operator or function.
	Col int
	// Msg describes the error.
	Msg string
}

func (err *MathError) Error() string {
	return errpos("math error", err.Col, err.Msg)
}

func (err *MathError) Pos() int {
	return err.Col
}

// RuntimeError is an error indicating a postfix expression that cannot be
// evaluated: missing operands, undefined names, or operands left over at the
// end. It implements InputError.
type RuntimeError struct {
	// Col is the position of the token that caused the error. It is 0 when
	// the error concerns the expression as a whole.
	Col int
	// Msg describes the error.
	Msg string
}

func (err *RuntimeError) Error() string {
	return errpos("runtime error", err.Col, err.Msg)
}

func (err *RuntimeError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a kind and position.
func errpos(kind string, pos int, msg string) string {
	if pos <= 0 {
		return kind + ": " + msg
	}
	return kind + " at column " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the column of the token that caused the error, or 0 if no
	// single token did.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*MathError)(nil)
	_ InputError = (*RuntimeError)(nil)
)
