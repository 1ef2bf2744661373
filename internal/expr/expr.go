package expr

import (
	"fmt"
	"strings"
)

// Bindings maps single-letter variable names to values.
type Bindings map[string]float64

// Expression is a normalized formula ready for repeated evaluation.
type Expression struct {
	norm string
}

// New normalizes formula. Syntax is checked lazily by Eval, since a parse
// can only proceed as far as the values it meets allow.
func New(formula string) *Expression {
	return &Expression{norm: Normalize(formula)}
}

// String returns the normalized formula.
func (e *Expression) String() string { return e.norm }

// Eval evaluates the expression under b.
func (e *Expression) Eval(b Bindings) (float64, error) {
	var sc scope
	for name, v := range b {
		idx, err := variableIndex(name)
		if err != nil {
			return 0, err
		}
		if sc.bound[idx] {
			return 0, fmt.Errorf("%w: %q is bound more than once", ErrInvalidBinding, strings.ToLower(name))
		}
		sc.set(idx, v)
	}
	return e.eval(&sc)
}

func (e *Expression) eval(sc *scope) (float64, error) {
	p := parser{src: e.norm, vars: sc}
	return p.expression(0, len(e.norm))
}

// Bind returns an evaluator taking the values of names positionally. The
// names are validated once, here, rather than on every call.
func (e *Expression) Bind(names ...string) (func(vals ...float64) (float64, error), error) {
	idx := make([]int, len(names))
	for i, name := range names {
		n, err := variableIndex(name)
		if err != nil {
			return nil, err
		}
		idx[i] = n
	}

	return func(vals ...float64) (float64, error) {
		if len(vals) != len(idx) {
			return 0, fmt.Errorf("%w: expected %d values for %v, got %d", ErrInvalidBinding, len(idx), names, len(vals))
		}
		var sc scope
		for i, v := range vals {
			sc.set(idx[i], v)
		}
		return e.eval(&sc)
	}, nil
}

// Func binds a single variable.
func (e *Expression) Func(name string) (func(float64) (float64, error), error) {
	f, err := e.Bind(name)
	if err != nil {
		return nil, err
	}
	return func(x float64) (float64, error) { return f(x) }, nil
}

// Evaluate normalizes and evaluates formula in one call.
func Evaluate(formula string, b Bindings) (float64, error) {
	return New(formula).Eval(b)
}

func variableIndex(name string) (int, error) {
	n := strings.ToLower(name)
	if len(n) != 1 || !isLetter(n[0]) || n == "d" {
		return 0, fmt.Errorf("%w: %q must be a single letter other than d", ErrInvalidBinding, name)
	}
	return int(n[0] - 'a'), nil
}
