package numeric

import (
	"fmt"
	"math"
)

type IntegrateResult struct {
	Xi           float64 `json:"xi"`
	Xf           float64 `json:"xf"`
	Integral     float64 `json:"integral"`
	Subdivisions int     `json:"subdivisions"`
	Epsilon      float64 `json:"epsilon"`
}

type sample struct {
	x, fx, weight float64
}

// Integrate computes the integral of f over [xi, xf]. Every refinement
// halves the spacing h, inserting weight-2 midpoints and demoting the
// previous interior points to weight 1, so that 2h/3·Σ w·f is the composite
// Simpson sum. Consecutive Simpson sums S are accelerated as
// S + (S - S_prev)/15, and the result is the first accelerated sum within
// IntegrateEpsilon of its predecessor.
func (s *Solver) Integrate(f Func, xi, xf float64) (*IntegrateResult, error) {
	fa, err := eval(f, xi)
	if err != nil {
		return nil, err
	}
	fb, err := eval(f, xf)
	if err != nil {
		return nil, err
	}

	eps := s.cfg.IntegrateEpsilon
	pts := []sample{{xi, fa, 0.5}, {xf, fb, 0.5}}
	n := 1

	var prevSum, prevAcc float64
	for gen := 1; gen <= s.cfg.MaxRefinements; gen++ {
		n *= 2
		h := (xf - xi) / float64(n)

		next := make([]sample, 0, 2*len(pts)-1)
		for i := 0; i < len(pts)-1; i++ {
			p := pts[i]
			if i > 0 {
				p.weight = 1
			}
			x := xi + float64(2*i+1)*h
			fx, err := eval(f, x)
			if err != nil {
				return nil, err
			}
			next = append(next, p, sample{x, fx, 2})
		}
		pts = append(next, pts[len(pts)-1])

		sum := 0.0
		for _, p := range pts {
			sum += p.weight * p.fx
		}
		simpson := 2 * h / 3 * sum

		if gen >= 2 {
			acc := simpson + (simpson-prevSum)/15
			if gen >= 3 && finite(acc) && finite(prevAcc) && math.Abs(acc-prevAcc) <= eps {
				s.log.Debug("integral converged", "xi", xi, "xf", xf, "subdivisions", n, "integral", acc)
				return &IntegrateResult{
					Xi:           xi,
					Xf:           xf,
					Integral:     acc,
					Subdivisions: n,
					Epsilon:      eps,
				}, nil
			}
			prevAcc = acc
		}
		prevSum = simpson
	}

	return nil, fmt.Errorf("%w: %d subdivisions of [%g, %g]", ErrIntegrationFailed, n, xi, xf)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
