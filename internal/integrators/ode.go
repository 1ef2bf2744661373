package integrators

import (
	"fmt"
	"strconv"
	"strings"
)

type Point struct {
	T float64 `json:"t"`
	X float64 `json:"x"`
}

// Trajectory is the solution of a first-order equation sampled at every
// step, initial condition included.
type Trajectory struct {
	Stepper string  `json:"stepper"`
	Points  []Point `json:"points"`
}

func (tr *Trajectory) Final() Point {
	return tr.Points[len(tr.Points)-1]
}

type Point2 struct {
	T float64 `json:"t"`
	X float64 `json:"x"`
	V float64 `json:"v"`
}

// Trajectory2 is the solution of a second-order equation with its
// velocity.
type Trajectory2 struct {
	Stepper string   `json:"stepper"`
	Points  []Point2 `json:"points"`
}

func (tr *Trajectory2) Final() Point2 {
	return tr.Points[len(tr.Points)-1]
}

// ParseSteps reads a step count as given by a user.
func ParseSteps(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonIntegerSteps, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrNonPositiveSteps, n)
	}
	return n, nil
}

// SolveFirstOrder integrates dx/dt = f(x, t) from x(0) = x0 to tFinal in n
// equal steps.
func SolveFirstOrder(st Stepper, f func(x, t float64) (float64, error), x0, tFinal float64, n int) (*Trajectory, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositiveSteps, n)
	}
	sys := SystemFunc(func(x State, t float64) (State, error) {
		dx, err := f(x[0], t)
		if err != nil {
			return nil, err
		}
		return State{dx}, nil
	})

	tr := &Trajectory{Points: make([]Point, 0, n+1)}
	tr.Points = append(tr.Points, Point{T: 0, X: x0})

	_, err := run(st, sys, State{x0}, tFinal, n, func(t float64, x State) {
		tr.Points = append(tr.Points, Point{T: t, X: x[0]})
	})
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// SolveSecondOrder integrates d²x/dt² = f(x, v, t) with x(0) = x0 and
// v(0) = v0 as the system dx/dt = v, dv/dt = f.
func SolveSecondOrder(st Stepper, f func(x, v, t float64) (float64, error), x0, v0, tFinal float64, n int) (*Trajectory2, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositiveSteps, n)
	}
	sys := SystemFunc(func(x State, t float64) (State, error) {
		dv, err := f(x[0], x[1], t)
		if err != nil {
			return nil, err
		}
		return State{x[1], dv}, nil
	})

	tr := &Trajectory2{Points: make([]Point2, 0, n+1)}
	tr.Points = append(tr.Points, Point2{T: 0, X: x0, V: v0})

	_, err := run(st, sys, State{x0, v0}, tFinal, n, func(t float64, x State) {
		tr.Points = append(tr.Points, Point2{T: t, X: x[0], V: x[1]})
	})
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// run takes n steps of tFinal/n, reporting each new state.
func run(st Stepper, sys System, x State, tFinal float64, n int, observe func(t float64, x State)) (State, error) {
	dt := tFinal / float64(n)
	for i := 0; i < n; i++ {
		t := float64(i) * dt
		next, err := st.Step(sys, x, t, dt)
		if err != nil {
			return nil, &StepError{Step: i + 1, Time: t, Wrapped: err}
		}
		x = next
		if i == n-1 {
			observe(tFinal, x)
		} else {
			observe(float64(i+1)*dt, x)
		}
	}
	return x, nil
}
