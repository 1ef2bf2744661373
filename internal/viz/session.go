package viz

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/numcalc/internal/calculus"
	"github.com/san-kum/numcalc/internal/expr"
)

const helpText = "a = <formula>, <formula>, diff <x0> <f>, integrate <xi> <xf> <f>, root <xi> <f>, max <xi> <f>, vars, clear"

// Session evaluates REPL lines against an engine, keeping variable
// bindings between lines.
type Session struct {
	engine *calculus.Engine
	vars   expr.Bindings
}

func NewSession(e *calculus.Engine) *Session {
	return &Session{engine: e, vars: expr.Bindings{}}
}

// Exec runs one line and returns its plain-text output.
func (s *Session) Exec(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case "help":
		return helpText, nil
	case "vars":
		return s.listVars(), nil
	case "clear":
		s.vars = expr.Bindings{}
		return "bindings cleared", nil
	case "diff":
		return s.operation(fields, 1, func(e *calculus.Engine, args []string, f string) (any, error) {
			return e.Differentiate(args[0], f)
		})
	case "integrate":
		return s.operation(fields, 2, func(e *calculus.Engine, args []string, f string) (any, error) {
			return e.Integrate(args[0], args[1], f)
		})
	case "root":
		return s.operation(fields, 1, func(e *calculus.Engine, args []string, f string) (any, error) {
			return e.FindRoot(args[0], f)
		})
	case "max":
		return s.operation(fields, 1, func(e *calculus.Engine, args []string, f string) (any, error) {
			return e.FindMax(args[0], f)
		})
	}

	if name, formula, ok := strings.Cut(line, "="); ok {
		name = strings.TrimSpace(name)
		v, err := expr.Evaluate(formula, s.vars)
		if err != nil {
			return "", err
		}
		next := expr.Bindings{name: v}
		if _, err := expr.Evaluate("0", next); err != nil {
			return "", err
		}
		s.vars[strings.ToLower(name)] = v
		return fmt.Sprintf("%s = %s", strings.ToLower(name), Number(v)), nil
	}

	v, err := expr.Evaluate(line, s.vars)
	if err != nil {
		return "", err
	}
	return Number(v), nil
}

// operation evaluates the leading numeric arguments under the current
// bindings and passes the rest of the line as the formula, with the
// bindings held constant.
func (s *Session) operation(fields []string, nargs int, run func(e *calculus.Engine, args []string, formula string) (any, error)) (string, error) {
	if len(fields) < nargs+2 {
		return "", fmt.Errorf("%w: usage: %s", expr.ErrTruncated, helpText)
	}
	args := make([]string, nargs)
	for i := range args {
		v, err := expr.Evaluate(fields[1+i], s.vars)
		if err != nil {
			return "", err
		}
		args[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	e, err := s.engine.WithConstants(s.vars)
	if err != nil {
		return "", err
	}
	res, err := run(e, args, strings.Join(fields[1+nargs:], ""))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, f := range Fields(res) {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(f.Label + "=" + f.Value)
	}
	return b.String(), nil
}

func (s *Session) listVars() string {
	if len(s.vars) == 0 {
		return "no bindings"
	}
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + " = " + Number(s.vars[name])
	}
	return strings.Join(parts, ", ")
}
