package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/zephyrtronium/rpncalc"
)

// assignment is a "name=value" variable definition. The value is an
// expression which may use previously defined variables.
type assignment struct {
	name string
	src  string
}

func parseAssign(s string) (assignment, error) {
	name, src, ok := strings.Cut(s, "=")
	if !ok {
		return assignment{}, errors.Errorf(`variable definitions must be "name=value", not %q`, s)
	}
	name = strings.TrimSpace(name)
	src = strings.TrimSpace(src)
	if !validName(name) {
		return assignment{}, errors.Errorf("cannot assign to %q", name)
	}
	if src == "" {
		return assignment{}, errors.Errorf("no value for %s", name)
	}
	return assignment{name: name, src: src}, nil
}

// validName returns whether name scans as exactly one variable, so that
// constants and function names can't be assigned.
func validName(name string) bool {
	toks, err := rpncalc.Tokenize(name)
	return err == nil && len(toks) == 1 && toks[0].Kind == rpncalc.TokenVariable
}

// apply evaluates the assignment's value in ctx and sets the variable. Plain
// numbers in any form strconv accepts, such as 1e5, are taken as is.
func (a assignment) apply(ctx *rpncalc.Context) (float64, error) {
	if v, err := strconv.ParseFloat(a.src, 64); err == nil {
		ctx.Set(a.name, v)
		return v, nil
	}
	p, err := rpncalc.Parse(a.src)
	if err != nil {
		return 0, errors.Wrapf(err, "setting %s", a.name)
	}
	v, err := ctx.Eval(p)
	if err != nil {
		return 0, errors.Wrapf(err, "setting %s", a.name)
	}
	ctx.Set(a.name, v)
	return v, nil
}

// loadVars reads a YAML mapping of variable names to numbers.
func loadVars(path string) (map[string]float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading variables")
	}
	var vars map[string]float64
	if err := yaml.Unmarshal(b, &vars); err != nil {
		return nil, errors.Wrapf(err, "parsing variables from %s", path)
	}
	for name := range vars {
		if !validName(name) {
			return nil, errors.Errorf("%s: invalid variable name %q", path, name)
		}
	}
	return vars, nil
}

// newContext creates the variable table from a vars file, if any, followed by
// command-line definitions in order.
func newContext(logger *slog.Logger, varsFile string, defs []assignment) (*rpncalc.Context, error) {
	ctx := rpncalc.NewContext()
	if varsFile != "" {
		vars, err := loadVars(varsFile)
		if err != nil {
			return nil, err
		}
		ctx = rpncalc.NewContext(rpncalc.SetVars(vars))
		logger.Debug("loaded variables", "file", varsFile, "count", len(vars))
	}
	for _, d := range defs {
		v, err := d.apply(ctx)
		if err != nil {
			return nil, err
		}
		logger.Debug("defined variable", "name", d.name, "value", v)
	}
	logger.Debug("variables ready", "names", ctx.Names())
	return ctx, nil
}
