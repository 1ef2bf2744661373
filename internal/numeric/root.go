package numeric

import (
	"fmt"
	"math"
	"sort"
)

type RootResult struct {
	Xi           float64 `json:"xi"`
	X            float64 `json:"x"`
	BracketSteps int     `json:"bracket_steps"`
	RootSteps    int     `json:"root_steps"`
	Epsilon      float64 `json:"epsilon"`
}

// point is a sampled abscissa.
type point struct {
	x, f float64
}

// triple is an ordered a.x < b.x < c.x bracket.
type triple struct {
	a, b, c point
}

func changesSign(u, v float64) bool {
	return u == 0 || v == 0 || (u < 0) != (v < 0)
}

// FindRoot locates a zero of f near xi. The window [xi-w, xi+w] is grown
// on the side with the smaller |f| until the endpoints differ in sign, then
// the bracket is narrowed by alternating bisection and inverse quadratic
// interpolation until some sample satisfies |f| ≤ RootEpsilon or the
// bracket cannot shrink further.
func (s *Solver) FindRoot(f Func, xi float64) (*RootResult, error) {
	lo, hi, steps, err := s.bracketRoot(f, xi)
	if err != nil {
		return nil, err
	}
	s.log.Debug("root bracketed", "lo", lo.x, "hi", hi.x, "steps", steps)

	mid := (lo.x + hi.x) / 2
	fm, err := eval(f, mid)
	if err != nil {
		return nil, err
	}
	t := triple{lo, point{mid, fm}, hi}

	eps := s.cfg.RootEpsilon
	for step := 0; ; step++ {
		if t.settled(eps) {
			best := t.closest()
			s.log.Debug("root converged", "x", best.x, "f", best.f, "steps", step)
			return &RootResult{
				Xi:           xi,
				X:            best.x,
				BracketSteps: steps,
				RootSteps:    step,
				Epsilon:      eps,
			}, nil
		}
		if step >= s.cfg.MaxRootSteps {
			return nil, fmt.Errorf("%w: root near %g after %d steps", ErrConvergenceFailed, xi, step)
		}

		if step%2 == 1 {
			if x, ok := t.inverseQuadratic(); ok {
				err = t.insertRoot(f, x)
				if err != nil {
					return nil, err
				}
				continue
			}
		}
		t, err = t.bisectRoot(f)
		if err != nil {
			return nil, err
		}
	}
}

func (s *Solver) bracketRoot(f Func, xi float64) (lo, hi point, steps int, err error) {
	w := s.cfg.Window
	lo.x, hi.x = xi-w, xi+w
	if lo.f, err = eval(f, lo.x); err != nil {
		return
	}
	if hi.f, err = eval(f, hi.x); err != nil {
		return
	}

	for !changesSign(lo.f, hi.f) {
		if steps >= s.cfg.MaxBracketSteps {
			err = fmt.Errorf("%w: no sign change around %g within [%g, %g]", ErrBracketingFailed, xi, lo.x, hi.x)
			return
		}
		steps++
		width := hi.x - lo.x
		if math.Abs(lo.f) < math.Abs(hi.f) {
			lo.x -= s.cfg.GrowthFactor * width
			if lo.f, err = eval(f, lo.x); err != nil {
				return
			}
		} else {
			hi.x += s.cfg.GrowthFactor * width
			if hi.f, err = eval(f, hi.x); err != nil {
				return
			}
		}
	}
	return
}

// settled reports a sample within eps of zero, or a bracket too narrow to
// split further.
func (t triple) settled(eps float64) bool {
	for _, p := range [3]point{t.a, t.b, t.c} {
		if math.Abs(p.f) <= eps {
			return true
		}
	}
	return t.c.x-t.a.x < eps*eps || t.b.x <= t.a.x || t.b.x >= t.c.x
}

func (t triple) closest() point {
	best := t.a
	for _, p := range [2]point{t.b, t.c} {
		if math.Abs(p.f) < math.Abs(best.f) {
			best = p
		}
	}
	return best
}

// bisectRoot halves whichever half of the bracket holds the sign change.
func (t triple) bisectRoot(f Func) (triple, error) {
	lo, hi := t.b, t.c
	if changesSign(t.a.f, t.b.f) {
		lo, hi = t.a, t.b
	}
	m := (lo.x + hi.x) / 2
	fm, err := eval(f, m)
	if err != nil {
		return t, err
	}
	return triple{lo, point{m, fm}, hi}, nil
}

// inverseQuadratic returns the zero of the quadratic x(f) through the
// three samples, provided it lies strictly inside the bracket.
func (t triple) inverseQuadratic() (float64, bool) {
	a, b, c := t.a, t.b, t.c
	if a.f == b.f || a.f == c.f || b.f == c.f {
		return 0, false
	}
	x := a.x*b.f*c.f/((a.f-b.f)*(a.f-c.f)) +
		b.x*a.f*c.f/((b.f-a.f)*(b.f-c.f)) +
		c.x*a.f*b.f/((c.f-a.f)*(c.f-b.f))
	if !(x > a.x && x < c.x) || x == b.x {
		return 0, false
	}
	return x, true
}

// insertRoot samples x and keeps the narrowest three consecutive points
// that still straddle a sign change.
func (t *triple) insertRoot(f Func, x float64) error {
	fx, err := eval(f, x)
	if err != nil {
		return err
	}
	pts := []point{t.a, t.b, t.c, {x, fx}}
	sort.Slice(pts, func(i, j int) bool { return pts[i].x < pts[j].x })

	best, width := -1, math.Inf(1)
	for j := 0; j+2 < len(pts); j++ {
		if !changesSign(pts[j].f, pts[j+1].f) && !changesSign(pts[j+1].f, pts[j+2].f) {
			continue
		}
		if w := pts[j+2].x - pts[j].x; w < width {
			best, width = j, w
		}
	}
	if best < 0 {
		return fmt.Errorf("%w: lost sign change near %g", ErrConvergenceFailed, x)
	}
	*t = triple{pts[best], pts[best+1], pts[best+2]}
	return nil
}
