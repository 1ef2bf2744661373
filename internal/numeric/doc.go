// Package numeric implements the numerical procedures built on top of a
// scalar function evaluator:
//
//   - [Solver.Differentiate]: value and first three derivatives from a
//     five-point central stencil, tolerant of a removable singularity
//   - [Solver.Integrate]: composite Simpson's rule with step halving and
//     Richardson acceleration
//   - [Solver.FindRoot]: sign-change bracketing, then alternating bisection
//     and inverse quadratic interpolation
//   - [Solver.FindMax]: expanding three-point bracketing, then alternating
//     bisection and parabolic interpolation
//
// The function under study is a [Func], usually obtained from
// expr.Expression.Func. Any evaluation error a procedure cannot tolerate is
// returned unchanged (wrapped with the abscissa), and no partial result is
// produced.
//
// # Example
//
//	f, _ := expr.New("sin(x)+x/2").Func("x")
//	s := numeric.New(numeric.DefaultConfig(), nil)
//	m, err := s.FindMax(f, 1)
//	// m.X ≈ 2.094, m.F ≈ 1.913
//
// # Thread Safety
//
// A Solver holds only its configuration and logger; every call allocates
// its own working state, so one Solver may serve concurrent callers.
package numeric
