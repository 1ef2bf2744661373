package integrators

import (
	"fmt"

	"github.com/san-kum/numcalc/internal/calc"
)

var (
	// ErrNonIntegerSteps indicates a step count that is not an integer.
	ErrNonIntegerSteps = fmt.Errorf("%w: number of steps is not an integer", calc.ErrInput)

	// ErrNonPositiveSteps indicates a step count of zero or less.
	ErrNonPositiveSteps = fmt.Errorf("%w: number of steps must be positive", calc.ErrInput)

	// ErrUnknownStepper indicates a stepper name missing from the registry.
	ErrUnknownStepper = fmt.Errorf("%w: unknown stepper", calc.ErrInput)
)

// StepError wraps a failed right-hand side evaluation with the step it
// occurred in.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4g): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
