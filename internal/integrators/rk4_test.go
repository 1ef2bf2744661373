package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/numcalc/internal/calc"
)

var oscillator = SystemFunc(func(x State, t float64) (State, error) {
	return State{x[1], -x[0]}, nil
})

func TestRK4Accuracy(t *testing.T) {
	integ := NewRK4()

	x := State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		var err error
		x, err = integ.Step(oscillator, x, float64(i)*dt, dt)
		if err != nil {
			t.Fatal(err)
		}
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-8 {
		t.Errorf("position error too large: got %.10f, expected %.10f", x[0], expectedX)
	}

	if math.Abs(x[1]-expectedV) > 1e-8 {
		t.Errorf("velocity error too large: got %.10f, expected %.10f", x[1], expectedV)
	}
}

func TestEulerFirstOrder(t *testing.T) {
	integ := NewEuler()
	decay := SystemFunc(func(x State, t float64) (State, error) {
		return State{-x[0]}, nil
	})

	x, err := integ.Step(decay, State{2}, 0, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x[0]-1.8) > 1e-15 {
		t.Errorf("expected 1.8, got %v", x[0])
	}
}

func TestStepperDoesNotMutateInput(t *testing.T) {
	for _, name := range NewRegistry().Names() {
		st, _ := NewRegistry().Get(name)
		x := State{1, 0}
		orig := x.Clone()
		if _, err := st.Step(oscillator, x, 0, 0.1); err != nil {
			t.Fatal(err)
		}
		if x[0] != orig[0] || x[1] != orig[1] {
			t.Errorf("%s: input state mutated to %v", name, x)
		}
	}
}

func TestStepperPropagatesErrors(t *testing.T) {
	bad := errors.New("bad derivative")
	failing := SystemFunc(func(x State, t float64) (State, error) {
		if t > 0 {
			return nil, bad
		}
		return State{1}, nil
	})

	if _, err := NewRK4().Step(failing, State{0}, 0, 0.1); !errors.Is(err, bad) {
		t.Errorf("expected stage error, got %v", err)
	}
	if _, err := NewEuler().Step(failing, State{0}, 1, 0.1); !errors.Is(err, bad) {
		t.Errorf("expected derivative error, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	names := r.Names()
	if len(names) != 2 || names[0] != "euler" || names[1] != "rk4" {
		t.Errorf("unexpected stepper names %v", names)
	}

	st, err := r.Get("")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := st.(*RK4); !ok {
		t.Errorf("expected RK4 as default, got %T", st)
	}

	_, err = r.Get("verlet")
	if !errors.Is(err, ErrUnknownStepper) || !errors.Is(err, calc.ErrInput) {
		t.Errorf("expected unknown stepper error, got %v", err)
	}
}
