package rpncalc

import (
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Context is a context for evaluating expressions. It holds the variable
// table and the operand stack. It is not safe to use a Context concurrently;
// use Clone to get a context per goroutine.
type Context struct {
	stack []float64
	names map[string]float64
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val float64) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]float64) ContextOption {
	return varsopt(vars)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	var ctx Context
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it. The clone
// shares nothing with the original.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{names: make(map[string]float64, len(ctx.names))}
	maps.Copy(n.names, ctx.names)
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			// do nothing
		case varopt:
			n.names[opt.name] = opt.val
		case varsopt:
			maps.Copy(n.names, opt)
		default:
			panic("rpncalc: unknown option type")
		}
	}
	return &n
}

// Set sets the value of a variable, replacing any previous value. Returns ctx
// for chaining.
func (ctx *Context) Set(name string, value float64) *Context {
	if ctx.names == nil {
		ctx.names = make(map[string]float64)
	}
	ctx.names[name] = value
	return ctx
}

// Lookup returns the value of a variable and whether it is defined.
func (ctx *Context) Lookup(name string) (float64, bool) {
	v, ok := ctx.names[name]
	return v, ok
}

// Names returns the names of all defined variables in sorted order.
func (ctx *Context) Names() []string {
	return slices.Sorted(maps.Keys(ctx.names))
}

// Eval evaluates a postfix expression. Variables are read from the context
// but never modified. The operand stack is emptied first, so an earlier
// failed evaluation does not affect this one.
func (ctx *Context) Eval(p Postfix) (float64, error) {
	ctx.stack = ctx.stack[:0]
	for _, tok := range p {
		switch tok.Kind {
		case TokenNumber:
			ctx.push(tok.Num)
		case TokenConstant:
			v, ok := constants[tok.Text]
			if !ok {
				return 0, &RuntimeError{Col: tok.Pos, Msg: "unknown constant: " + tok.Text}
			}
			ctx.push(v)
		case TokenVariable:
			v, ok := ctx.names[tok.Text]
			if !ok {
				return 0, &RuntimeError{Col: tok.Pos, Msg: "undefined variable: " + tok.Text}
			}
			ctx.push(v)
		case TokenOperator:
			if err := ctx.binary(tok); err != nil {
				return 0, err
			}
		case TokenUnary:
			if err := ctx.unary(tok); err != nil {
				return 0, err
			}
		case TokenFunction:
			if err := ctx.call(tok); err != nil {
				return 0, err
			}
		default:
			return 0, &RuntimeError{Col: tok.Pos, Msg: "unexpected token " + strconv.Quote(tok.String()) + " in postfix expression"}
		}
	}
	if len(ctx.stack) != 1 {
		return 0, &RuntimeError{Msg: "invalid expression: too many operands left"}
	}
	return ctx.stack[0], nil
}

var constants = map[string]float64{
	"PI": math.Pi,
}

func (ctx *Context) binary(tok Token) error {
	if len(ctx.stack) < 2 {
		return &RuntimeError{Col: tok.Pos, Msg: "not enough operands for operator " + tok.Text}
	}
	r := ctx.pop()
	l := ctx.top()
	var v float64
	switch tok.Text {
	case "+":
		v = l + r
	case "-":
		v = l - r
	case "*":
		v = l * r
	case "/":
		if r == 0 {
			return &MathError{Col: tok.Pos, Msg: "division by zero"}
		}
		v = l / r
	case "^":
		v = math.Pow(l, r)
	default:
		return &RuntimeError{Col: tok.Pos, Msg: "unknown operator: " + tok.Text}
	}
	ctx.stack[len(ctx.stack)-1] = v
	return nil
}

func (ctx *Context) unary(tok Token) error {
	if len(ctx.stack) < 1 {
		return &RuntimeError{Col: tok.Pos, Msg: "not enough operands for unary minus"}
	}
	if tok.Text != "neg" {
		return &RuntimeError{Col: tok.Pos, Msg: "unknown unary operator: " + tok.Text}
	}
	ctx.stack[len(ctx.stack)-1] = -ctx.top()
	return nil
}

func (ctx *Context) call(tok Token) error {
	if len(ctx.stack) < 1 {
		return &RuntimeError{Col: tok.Pos, Msg: "not enough operands for function " + tok.Text}
	}
	fn, ok := functions[tok.Text]
	if !ok {
		return &RuntimeError{Col: tok.Pos, Msg: "unknown function: " + tok.Text}
	}
	x := ctx.top()
	v, ok := fn.f(x)
	if !ok {
		return &MathError{Col: tok.Pos, Msg: fn.name + " requires " + fn.domain + ", got " + strconv.FormatFloat(x, 'g', -1, 64)}
	}
	ctx.stack[len(ctx.stack)-1] = v
	return nil
}

// push pushes a value onto the operand stack.
func (ctx *Context) push(v float64) {
	ctx.stack = append(ctx.stack, v)
}

// pop removes the top from the stack and returns it.
func (ctx *Context) pop() float64 {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() float64 {
	return ctx.stack[len(ctx.stack)-1]
}

// Eval is a shortcut to scan, convert, and evaluate an expression in a new
// context created with opts.
func Eval(src io.RuneScanner, opts ...ContextOption) (float64, error) {
	toks, err := Lex(src)
	if err != nil {
		return 0, err
	}
	p, err := ToPostfix(toks)
	if err != nil {
		return 0, err
	}
	return NewContext(opts...).Eval(p)
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}
