package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/zephyrtronium/rpncalc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run runs the calculator with the given arguments and returns the process
// exit status: 0 on success, 1 if any expression failed, 2 on bad usage.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		verb, varsFile, logFile string
		echo, interactive, dbg  bool
		defs                    []assignment
	)
	define := func(s string) error {
		a, err := parseAssign(s)
		if err != nil {
			return err
		}
		defs = append(defs, a)
		return nil
	}
	flags := flag.NewFlagSet("rpncalc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "usage: rpncalc [flags] [expression ...]")
		flags.PrintDefaults()
	}
	flags.StringVar(&verb, "fmt", "%g", "result formatting verb")
	flags.BoolVar(&echo, "echo", false, "print the postfix form of each expression")
	flags.BoolVar(&interactive, "i", false, "read expressions interactively")
	flags.Func("var", "name=value variable definition (any number of times); value is a number or expression", define)
	flags.Func("v", "shorthand for -var", define)
	flags.StringVar(&varsFile, "vars", "", "YAML file of name: value variable definitions")
	flags.StringVar(&logFile, "log", "", "also write JSON logs to this file")
	flags.BoolVar(&dbg, "debug", false, "log tokens and postfix expressions")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger, closeLog, err := newLogger(stderr, logFile, dbg)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	defer closeLog()

	ctx, err := newContext(logger, varsFile, defs)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	c := &calc{
		ctx:    ctx,
		log:    logger,
		verb:   verb + "\n",
		echo:   echo,
		stdout: stdout,
		stderr: stderr,
	}

	switch {
	case flags.NArg() > 0:
		status := 0
		for _, src := range flags.Args() {
			if !c.eval(src) {
				status = 1
			}
		}
		return status
	case interactive || isTerminal(stdin):
		if err := c.repl(); err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
		return 0
	default:
		return c.lines(stdin)
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// calc evaluates expressions against one variable table and prints results.
type calc struct {
	ctx    *rpncalc.Context
	log    *slog.Logger
	verb   string
	echo   bool
	stdout io.Writer
	stderr io.Writer
}

// eval evaluates one expression and prints its result or error. It returns
// whether evaluation succeeded.
func (c *calc) eval(src string) bool {
	toks, err := rpncalc.Tokenize(src)
	if err != nil {
		return c.fail(src, err)
	}
	c.log.Debug("tokenized", "src", src, "tokens", len(toks))
	p, err := rpncalc.ToPostfix(toks)
	if err != nil {
		return c.fail(src, err)
	}
	c.log.Debug("converted", "src", src, "postfix", p.String())
	r, err := c.ctx.Eval(p)
	if err != nil {
		return c.fail(src, err)
	}
	c.log.Info("evaluated", "src", src, "result", r)
	if c.echo {
		fmt.Fprintf(c.stdout, "%v : ", p)
	}
	fmt.Fprintf(c.stdout, "Result: "+c.verb, r)
	return true
}

// assign evaluates a name = expr line and stores the result.
func (c *calc) assign(line string) bool {
	a, err := parseAssign(line)
	if err != nil {
		return c.fail(line, err)
	}
	v, err := a.apply(c.ctx)
	if err != nil {
		return c.fail(line, err)
	}
	c.log.Info("assigned", "name", a.name, "value", v)
	fmt.Fprintf(c.stdout, a.name+" = "+c.verb, v)
	return true
}

// handle evaluates an input line, which is either an expression or an
// assignment.
func (c *calc) handle(line string) bool {
	if strings.Contains(line, "=") {
		return c.assign(line)
	}
	return c.eval(line)
}

func (c *calc) fail(src string, err error) bool {
	c.log.Debug("failed", "src", src, "error", err)
	fmt.Fprintln(c.stderr, "Error:", err)
	return false
}

// lines evaluates each non-blank line of in.
func (c *calc) lines(in io.Reader) int {
	status := 0
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		if !c.handle(line) {
			status = 1
		}
	}
	if err := scan.Err(); err != nil {
		fmt.Fprintln(c.stderr, "Error:", errors.Wrap(err, "reading input"))
		return 1
	}
	return status
}
