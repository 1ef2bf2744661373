package store

import (
	"fmt"
	"strconv"

	"github.com/san-kum/numcalc/internal/integrators"
	"github.com/san-kum/numcalc/internal/numeric"
)

// Table flattens a result into a header and rows of formatted values.
func Table(result any) ([]string, [][]string, error) {
	switch r := result.(type) {
	case float64:
		return []string{"value"}, [][]string{{ftoa(r)}}, nil
	case *numeric.DiffResult:
		return []string{"x0", "f", "df", "d2f", "d3f", "nonsingular"},
			[][]string{{ftoa(r.X0), ftoa(r.Derivs[0]), ftoa(r.Derivs[1]), ftoa(r.Derivs[2]), ftoa(r.Derivs[3]), strconv.FormatBool(r.Nonsingular)}}, nil
	case *numeric.IntegrateResult:
		return []string{"xi", "xf", "integral", "subdivisions", "epsilon"},
			[][]string{{ftoa(r.Xi), ftoa(r.Xf), ftoa(r.Integral), strconv.Itoa(r.Subdivisions), ftoa(r.Epsilon)}}, nil
	case *numeric.RootResult:
		return []string{"xi", "x", "bracket_steps", "root_steps", "epsilon"},
			[][]string{{ftoa(r.Xi), ftoa(r.X), strconv.Itoa(r.BracketSteps), strconv.Itoa(r.RootSteps), ftoa(r.Epsilon)}}, nil
	case *numeric.MaxResult:
		return []string{"xi", "x", "f", "bracket_steps", "max_steps", "epsilon"},
			[][]string{{ftoa(r.Xi), ftoa(r.X), ftoa(r.F), strconv.Itoa(r.BracketSteps), strconv.Itoa(r.MaxSteps), ftoa(r.Epsilon)}}, nil
	case *integrators.Trajectory:
		rows := make([][]string, len(r.Points))
		for i, p := range r.Points {
			rows[i] = []string{ftoa(p.T), ftoa(p.X)}
		}
		return []string{"t", "x"}, rows, nil
	case *integrators.Trajectory2:
		rows := make([][]string, len(r.Points))
		for i, p := range r.Points {
			rows[i] = []string{ftoa(p.T), ftoa(p.X), ftoa(p.V)}
		}
		return []string{"t", "x", "v"}, rows, nil
	default:
		return nil, nil, fmt.Errorf("store: no tabular form for %T", result)
	}
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
