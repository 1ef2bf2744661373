package viz

import (
	"fmt"
	"strconv"

	"github.com/san-kum/numcalc/internal/calc"
	"github.com/san-kum/numcalc/internal/integrators"
	"github.com/san-kum/numcalc/internal/numeric"
)

// Number formats a value with ten significant digits.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// Fields lists the labelled values of a result.
func Fields(result any) []Field {
	switch r := result.(type) {
	case float64:
		return []Field{{"value", Number(r)}}
	case *numeric.DiffResult:
		fields := []Field{
			{"x0", Number(r.X0)},
			{"f", Number(r.Derivs[0])},
			{"f'", Number(r.Derivs[1])},
			{"f''", Number(r.Derivs[2])},
			{"f'''", Number(r.Derivs[3])},
		}
		if !r.Nonsingular {
			fields = append(fields, Field{"note", "f undefined at x0, extrapolated"})
		}
		return fields
	case *numeric.IntegrateResult:
		return []Field{
			{"interval", fmt.Sprintf("[%s, %s]", Number(r.Xi), Number(r.Xf))},
			{"integral", Number(r.Integral)},
			{"subdivisions", strconv.Itoa(r.Subdivisions)},
			{"epsilon", Number(r.Epsilon)},
		}
	case *numeric.RootResult:
		return []Field{
			{"start", Number(r.Xi)},
			{"root", Number(r.X)},
			{"bracketing", strconv.Itoa(r.BracketSteps) + " steps"},
			{"refinement", strconv.Itoa(r.RootSteps) + " steps"},
			{"epsilon", Number(r.Epsilon)},
		}
	case *numeric.MaxResult:
		return []Field{
			{"start", Number(r.Xi)},
			{"x", Number(r.X)},
			{"f(x)", Number(r.F)},
			{"bracketing", strconv.Itoa(r.BracketSteps) + " steps"},
			{"refinement", strconv.Itoa(r.MaxSteps) + " steps"},
			{"epsilon", Number(r.Epsilon)},
		}
	case *integrators.Trajectory:
		final := r.Final()
		return []Field{
			{"stepper", r.Stepper},
			{"steps", strconv.Itoa(len(r.Points) - 1)},
			{"t", Number(final.T)},
			{"x(t)", Number(final.X)},
		}
	case *integrators.Trajectory2:
		final := r.Final()
		return []Field{
			{"stepper", r.Stepper},
			{"steps", strconv.Itoa(len(r.Points) - 1)},
			{"t", Number(final.T)},
			{"x(t)", Number(final.X)},
			{"v(t)", Number(final.V)},
		}
	}
	return []Field{{"result", fmt.Sprint(result)}}
}

// Result renders a result panel.
func Result(title string, result any) string {
	return KeyValues(title, Fields(result))
}

// Error renders err prefixed with its kind.
func Error(err error) string {
	return Failure.Render(fmt.Sprintf("error (%s):", calc.KindOf(err))) + " " + err.Error()
}
