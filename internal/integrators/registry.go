package integrators

import (
	"fmt"
	"sort"
)

// DefaultStepper is the stepper used when none is named.
const DefaultStepper = "rk4"

type Registry struct {
	steppers map[string]func() Stepper
}

func NewRegistry() *Registry {
	r := &Registry{
		steppers: make(map[string]func() Stepper),
	}

	r.steppers["euler"] = func() Stepper { return NewEuler() }
	r.steppers["rk4"] = func() Stepper { return NewRK4() }

	return r
}

// Get returns a fresh stepper. An empty name selects DefaultStepper.
func (r *Registry) Get(name string) (Stepper, error) {
	if name == "" {
		name = DefaultStepper
	}
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStepper, name)
	}
	return fn(), nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.steppers))
	for name := range r.steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
