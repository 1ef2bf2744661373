package expr

import (
	"fmt"

	"github.com/san-kum/numcalc/internal/calc"
)

// Parse failures.
var (
	ErrUnclosedParen   = fmt.Errorf("%w: no closing parenthesis", calc.ErrParse)
	ErrTruncated       = fmt.Errorf("%w: expression truncates prematurely", calc.ErrParse)
	ErrBadNumber       = fmt.Errorf("%w: cannot parse a number", calc.ErrParse)
	ErrUnknownFunction = fmt.Errorf("%w: no such function", calc.ErrParse)
	ErrMissingArgument = fmt.Errorf("%w: function has no argument", calc.ErrParse)
	ErrUnknownOperator = fmt.Errorf("%w: unknown operator", calc.ErrParse)
)

// Arithmetic failures.
var (
	ErrDivideByZero    = fmt.Errorf("%w: division by zero", calc.ErrArithmetic)
	ErrIllDefinedPower = fmt.Errorf("%w: ill-defined power", calc.ErrArithmetic)
)

// ErrInvalidBinding rejects variable names that are not a single letter, or
// that collide with the d division spelling.
var ErrInvalidBinding = fmt.Errorf("%w: invalid variable binding", calc.ErrInput)

// SyntaxError locates a parse failure inside the normalized formula.
type SyntaxError struct {
	Formula string
	Pos     int
	Err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v (at offset %d of %q)", e.Err, e.Pos, e.Formula)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
