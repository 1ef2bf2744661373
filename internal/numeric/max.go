package numeric

import (
	"fmt"
	"math"
)

type MaxResult struct {
	Xi           float64 `json:"xi"`
	X            float64 `json:"x"`
	F            float64 `json:"f"`
	BracketSteps int     `json:"bracket_steps"`
	MaxSteps     int     `json:"max_steps"`
	Epsilon      float64 `json:"epsilon"`
}

// FindMax locates a local maximum of f near xi. Starting from
// (xi-w, xi, xi+w) the triple climbs toward the larger outer sample with
// growing steps until the middle sample is the largest. It is then
// narrowed by alternating bisection of the wider half and parabolic
// interpolation, stopping once two successive parabola vertices agree
// within MaxEpsilon.
func (s *Solver) FindMax(f Func, xi float64) (*MaxResult, error) {
	t, steps, err := s.bracketMax(f, xi)
	if err != nil {
		return nil, err
	}
	s.log.Debug("maximum bracketed", "a", t.a.x, "b", t.b.x, "c", t.c.x, "steps", steps)

	eps := s.cfg.MaxEpsilon
	prev := math.NaN()
	for step := 0; step < s.cfg.MaxSearchSteps; step++ {
		if step%2 == 0 {
			if t, err = t.bisectMax(f); err != nil {
				return nil, err
			}
			continue
		}

		v := t.vertex()
		if v > t.a.x && v < t.c.x && v != t.b.x {
			fv, err := eval(f, v)
			if err != nil {
				return nil, err
			}
			t = t.insertMax(point{v, fv})
		}
		if math.Abs(v-prev) < eps {
			s.log.Debug("maximum converged", "x", t.b.x, "f", t.b.f, "steps", step+1)
			return &MaxResult{
				Xi:           xi,
				X:            t.b.x,
				F:            t.b.f,
				BracketSteps: steps,
				MaxSteps:     step + 1,
				Epsilon:      eps,
			}, nil
		}
		prev = v
	}

	return nil, fmt.Errorf("%w: maximum near %g after %d steps", ErrConvergenceFailed, xi, s.cfg.MaxSearchSteps)
}

func (s *Solver) bracketMax(f Func, xi float64) (t triple, steps int, err error) {
	w := s.cfg.Window
	t.a.x, t.b.x, t.c.x = xi-w, xi, xi+w
	for _, p := range []*point{&t.a, &t.b, &t.c} {
		if p.f, err = eval(f, p.x); err != nil {
			return
		}
	}

	for !(t.b.f >= t.a.f && t.b.f >= t.c.f) {
		if steps >= s.cfg.MaxBracketSteps {
			err = fmt.Errorf("%w: no interior maximum around %g within [%g, %g]", ErrBracketingFailed, xi, t.a.x, t.c.x)
			return
		}
		steps++
		if t.a.f > t.c.f {
			x := t.a.x - s.cfg.GrowthFactor*(t.b.x-t.a.x)
			fx, ferr := eval(f, x)
			if ferr != nil {
				err = ferr
				return
			}
			t = triple{point{x, fx}, t.a, t.b}
		} else {
			x := t.c.x + s.cfg.GrowthFactor*(t.c.x-t.b.x)
			fx, ferr := eval(f, x)
			if ferr != nil {
				err = ferr
				return
			}
			t = triple{t.b, t.c, point{x, fx}}
		}
	}
	return
}

// bisectMax samples the middle of the wider half.
func (t triple) bisectMax(f Func) (triple, error) {
	m := (t.b.x + t.c.x) / 2
	if t.b.x-t.a.x > t.c.x-t.b.x {
		m = (t.a.x + t.b.x) / 2
	}
	fm, err := eval(f, m)
	if err != nil {
		return t, err
	}
	return t.insertMax(point{m, fm}), nil
}

// insertMax replaces one end of the triple with p so that the middle
// sample stays the largest.
func (t triple) insertMax(p point) triple {
	switch {
	case p.x < t.b.x && p.f >= t.b.f:
		return triple{t.a, p, t.b}
	case p.x < t.b.x:
		return triple{p, t.b, t.c}
	case p.f >= t.b.f:
		return triple{t.b, p, t.c}
	default:
		return triple{t.a, t.b, p}
	}
}

// vertex is the abscissa of the parabola through the triple. Collinear
// samples under the bracketing invariant are level, and any point of a
// level triple is a maximum, so the middle is returned.
func (t triple) vertex() float64 {
	a, b, c := t.a, t.b, t.c
	num := (b.x-a.x)*(b.x-a.x)*(b.f-c.f) - (b.x-c.x)*(b.x-c.x)*(b.f-a.f)
	den := (b.x-a.x)*(b.f-c.f) - (b.x-c.x)*(b.f-a.f)
	if den == 0 {
		return b.x
	}
	return b.x - 0.5*num/den
}
