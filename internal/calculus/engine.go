package calculus

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/san-kum/numcalc/internal/expr"
	"github.com/san-kum/numcalc/internal/integrators"
	"github.com/san-kum/numcalc/internal/numeric"
)

// DefaultVariable is the variable single-variable operations bind.
const DefaultVariable = "x"

type Engine struct {
	solver   *numeric.Solver
	steppers *integrators.Registry
	stepper  string
	variable string
	consts   expr.Bindings
	log      *slog.Logger
}

type Option func(*Engine)

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithStepper selects the ODE stepper by registry name.
func WithStepper(name string) Option {
	return func(e *Engine) { e.stepper = name }
}

// New validates cfg and returns an engine using it.
func New(cfg numeric.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		steppers: integrators.NewRegistry(),
		stepper:  integrators.DefaultStepper,
		variable: DefaultVariable,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if _, err := e.steppers.Get(e.stepper); err != nil {
		return nil, err
	}
	e.solver = numeric.New(cfg, e.log)
	return e, nil
}

// WithVariable returns a copy of e whose single-variable operations bind
// name instead.
func (e *Engine) WithVariable(name string) (*Engine, error) {
	if _, err := expr.New("0").Func(name); err != nil {
		return nil, err
	}
	c := *e
	c.variable = strings.ToLower(name)
	return &c, nil
}

// WithConstants returns a copy of e that evaluates every formula with the
// given variables fixed. An operation's own variables take precedence.
func (e *Engine) WithConstants(b expr.Bindings) (*Engine, error) {
	if _, err := expr.New("0").Eval(b); err != nil {
		return nil, err
	}
	c := *e
	c.consts = make(expr.Bindings, len(b))
	for name, v := range b {
		c.consts[strings.ToLower(name)] = v
	}
	return &c, nil
}

func (e *Engine) Variable() string { return e.variable }

func (e *Engine) Stepper() string { return e.stepper }

func (e *Engine) Config() numeric.Config { return e.solver.Config() }

// Evaluate evaluates formula with each binding value read as a constant
// formula.
func (e *Engine) Evaluate(formula string, bindings map[string]string) (float64, error) {
	b := make(expr.Bindings, len(e.consts)+len(bindings))
	for name, v := range e.consts {
		b[name] = v
	}
	given := make(map[string]bool, len(bindings))
	for name, raw := range bindings {
		key := strings.ToLower(name)
		if given[key] {
			return 0, fmt.Errorf("%w: %q is bound more than once", expr.ErrInvalidBinding, key)
		}
		given[key] = true
		v, err := constant(name, raw)
		if err != nil {
			return 0, err
		}
		b[key] = v
	}
	return expr.Evaluate(formula, b)
}

func (e *Engine) Differentiate(x0, formula string) (*numeric.DiffResult, error) {
	at, err := constant("x0", x0)
	if err != nil {
		return nil, err
	}
	f, err := e.function(formula)
	if err != nil {
		return nil, err
	}
	return e.solver.Differentiate(f, at)
}

func (e *Engine) Integrate(xi, xf, formula string) (*numeric.IntegrateResult, error) {
	lo, err := constant("xi", xi)
	if err != nil {
		return nil, err
	}
	hi, err := constant("xf", xf)
	if err != nil {
		return nil, err
	}
	f, err := e.function(formula)
	if err != nil {
		return nil, err
	}
	return e.solver.Integrate(f, lo, hi)
}

func (e *Engine) FindRoot(xi, formula string) (*numeric.RootResult, error) {
	start, err := constant("xi", xi)
	if err != nil {
		return nil, err
	}
	f, err := e.function(formula)
	if err != nil {
		return nil, err
	}
	return e.solver.FindRoot(f, start)
}

func (e *Engine) FindMax(xi, formula string) (*numeric.MaxResult, error) {
	start, err := constant("xi", xi)
	if err != nil {
		return nil, err
	}
	f, err := e.function(formula)
	if err != nil {
		return nil, err
	}
	return e.solver.FindMax(f, start)
}

// SolveODE1 integrates dx/dt = formula(x, t) from x(0) = x0.
func (e *Engine) SolveODE1(x0, tFinal, nSteps, formula string) (*integrators.Trajectory, error) {
	n, err := integrators.ParseSteps(nSteps)
	if err != nil {
		return nil, err
	}
	args, err := constants([]string{"x0", "t"}, []string{x0, tFinal})
	if err != nil {
		return nil, err
	}
	bound, err := e.bind(formula, "x", "t")
	if err != nil {
		return nil, err
	}
	st, err := e.steppers.Get(e.stepper)
	if err != nil {
		return nil, err
	}

	f := func(x, t float64) (float64, error) { return bound(x, t) }
	tr, err := integrators.SolveFirstOrder(st, f, args[0], args[1], n)
	if err != nil {
		return nil, err
	}
	tr.Stepper = e.stepper
	e.log.Debug("ode1 solved", "stepper", e.stepper, "steps", n, "x", tr.Final().X)
	return tr, nil
}

// SolveODE2 integrates d²x/dt² = formula(x, v, t) from x(0) = x0 and
// v(0) = v0.
func (e *Engine) SolveODE2(x0, v0, tFinal, nSteps, formula string) (*integrators.Trajectory2, error) {
	n, err := integrators.ParseSteps(nSteps)
	if err != nil {
		return nil, err
	}
	args, err := constants([]string{"x0", "v0", "t"}, []string{x0, v0, tFinal})
	if err != nil {
		return nil, err
	}
	bound, err := e.bind(formula, "x", "v", "t")
	if err != nil {
		return nil, err
	}
	st, err := e.steppers.Get(e.stepper)
	if err != nil {
		return nil, err
	}

	f := func(x, v, t float64) (float64, error) { return bound(x, v, t) }
	tr, err := integrators.SolveSecondOrder(st, f, args[0], args[1], args[2], n)
	if err != nil {
		return nil, err
	}
	tr.Stepper = e.stepper
	e.log.Debug("ode2 solved", "stepper", e.stepper, "steps", n, "x", tr.Final().X, "v", tr.Final().V)
	return tr, nil
}

func (e *Engine) function(formula string) (numeric.Func, error) {
	bound, err := e.bind(formula, e.variable)
	if err != nil {
		return nil, err
	}
	return func(x float64) (float64, error) { return bound(x) }, nil
}

// bind compiles formula over the free variables, appending the engine's
// constants after them.
func (e *Engine) bind(formula string, free ...string) (func(vals ...float64) (float64, error), error) {
	names := slices.Clone(free)
	var fixed []float64
	for name, v := range e.consts {
		if slices.Contains(free, name) {
			continue
		}
		names = append(names, name)
		fixed = append(fixed, v)
	}

	bound, err := expr.New(formula).Bind(names...)
	if err != nil {
		return nil, err
	}
	if len(fixed) == 0 {
		return bound, nil
	}
	return func(vals ...float64) (float64, error) {
		all := make([]float64, 0, len(names))
		all = append(append(all, vals...), fixed...)
		return bound(all...)
	}, nil
}

// constant evaluates an argument that may not reference variables.
func constant(name, raw string) (float64, error) {
	v, err := expr.Evaluate(raw, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func constants(names, raws []string) ([]float64, error) {
	vals := make([]float64, len(raws))
	for i, raw := range raws {
		v, err := constant(names[i], raw)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
