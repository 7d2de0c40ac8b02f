// Package rpncalc implements a floating-point calculator that evaluates
// expressions by converting them to postfix (reverse Polish) notation.
//
// Evaluation happens in three stages. Tokenize scans text into tokens,
// ToPostfix reorders the tokens with the shunting-yard algorithm, and
// Context.Eval runs the postfix tokens on a stack machine. Parse and EvalString
// chain the stages for the common cases.
//
// Expressions may use numbers, the binary operators + - * / and ^, unary
// minus, postfix factorial !, the functions sin and cos, the constant PI, and
// variables. "{2 + x} * [y - 1]" is valid; the three bracket pairs group the
// same way, but each closing bracket must match its own opening bracket.
// "-2^2" is "-(2^2)", and "2^3^2" is "2^(3^2)".
//
// A Context holds variable definitions, so an expression can be parsed once and
// evaluated for many inputs.
//
package rpncalc
