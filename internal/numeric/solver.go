package numeric

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/san-kum/numcalc/internal/calc"
)

// Func is a real function of one variable that may fail to evaluate.
type Func func(x float64) (float64, error)

type Config struct {
	// Differentiation stencil step h.
	DiffStep float64

	// Absolute agreement required of consecutive accelerated Simpson sums.
	IntegrateEpsilon float64
	// Maximum number of step halvings.
	MaxRefinements int

	// Half-width of the initial bracket around the starting point.
	Window float64
	// Expansion factor applied while bracketing.
	GrowthFactor float64
	// Step cap of the bracketing phase.
	MaxBracketSteps int

	RootEpsilon  float64
	MaxRootSteps int

	MaxEpsilon     float64
	MaxSearchSteps int
}

func DefaultConfig() Config {
	return Config{
		DiffStep:         1e-3,
		IntegrateEpsilon: 1e-12,
		MaxRefinements:   20,
		Window:           0.1,
		GrowthFactor:     1.6,
		MaxBracketSteps:  30,
		RootEpsilon:      1e-10,
		MaxRootSteps:     20,
		MaxEpsilon:       1e-5,
		MaxSearchSteps:   50,
	}
}

// Validate reports the first field outside its valid range.
func (c Config) Validate() error {
	switch {
	case !(c.DiffStep > 0):
		return fmt.Errorf("%w: differentiation step must be positive, got %g", calc.ErrInput, c.DiffStep)
	case !(c.IntegrateEpsilon > 0):
		return fmt.Errorf("%w: integration epsilon must be positive, got %g", calc.ErrInput, c.IntegrateEpsilon)
	case c.MaxRefinements < 2 || c.MaxRefinements > 30:
		return fmt.Errorf("%w: refinements must be within [2, 30], got %d", calc.ErrInput, c.MaxRefinements)
	case !(c.Window > 0):
		return fmt.Errorf("%w: window must be positive, got %g", calc.ErrInput, c.Window)
	case !(c.GrowthFactor > 0):
		return fmt.Errorf("%w: growth factor must be positive, got %g", calc.ErrInput, c.GrowthFactor)
	case c.MaxBracketSteps < 0 || c.MaxRootSteps < 1 || c.MaxSearchSteps < 1:
		return fmt.Errorf("%w: step caps must be positive", calc.ErrInput)
	case !(c.RootEpsilon > 0) || !(c.MaxEpsilon > 0):
		return fmt.Errorf("%w: epsilons must be positive", calc.ErrInput)
	}
	return nil
}

// Solver runs the numerical procedures under a fixed configuration.
type Solver struct {
	cfg Config
	log *slog.Logger
}

// New returns a Solver. A nil logger discards debug output.
func New(cfg Config, logger *slog.Logger) *Solver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Solver{cfg: cfg, log: logger}
}

func (s *Solver) Config() Config { return s.cfg }

// eval wraps a failed evaluation with the abscissa it was attempted at.
func eval(f Func, x float64) (float64, error) {
	v, err := f(x)
	if err != nil {
		return 0, fmt.Errorf("f(%g): %w", x, err)
	}
	return v, nil
}
