package numeric

import (
	"fmt"

	"github.com/san-kum/numcalc/internal/calc"
)

var (
	// ErrBracketingFailed indicates no sign change (root) or no interior
	// maximum (max) was enclosed within the bracketing step cap.
	ErrBracketingFailed = fmt.Errorf("%w: bracketing failed", calc.ErrConvergence)

	// ErrConvergenceFailed indicates the refinement step cap was reached.
	ErrConvergenceFailed = fmt.Errorf("%w: refinement did not converge", calc.ErrConvergence)

	// ErrIntegrationFailed indicates the subdivision cap was reached before
	// two accelerated sums agreed.
	ErrIntegrationFailed = fmt.Errorf("%w: integral did not converge", calc.ErrConvergence)
)
