package calc

import (
	"errors"
	"fmt"
)

// Error kinds. Component errors wrap one of these with %w.
var (
	ErrParse       = errors.New("parse error")
	ErrDomain      = errors.New("domain error")
	ErrArithmetic  = errors.New("arithmetic error")
	ErrConvergence = errors.New("convergence error")
	ErrInput       = errors.New("input error")
)

// DomainError reports a unary function applied outside its domain.
type DomainError struct {
	Func   string
	Arg    float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s(%g): %s", e.Func, e.Arg, e.Reason)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// KindOf names the category of err, or "internal" when err wraps none of
// the kind sentinels.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrDomain):
		return "domain"
	case errors.Is(err, ErrArithmetic):
		return "arithmetic"
	case errors.Is(err, ErrConvergence):
		return "convergence"
	case errors.Is(err, ErrInput):
		return "input"
	default:
		return "internal"
	}
}
