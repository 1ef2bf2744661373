package integrators

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// System is the right-hand side dx/dt = Derive(x, t).
type System interface {
	Derive(x State, t float64) (State, error)
}

// SystemFunc adapts a function to System.
type SystemFunc func(x State, t float64) (State, error)

func (f SystemFunc) Derive(x State, t float64) (State, error) { return f(x, t) }

type Stepper interface {
	Step(sys System, x State, t, dt float64) (State, error)
}
