// Package calc defines the error taxonomy shared by the calculus engine.
//
// Every failure returned by the engine wraps exactly one of the kind
// sentinels below, so callers can classify an error without knowing which
// component produced it:
//
//   - [ErrParse]: malformed formula text
//   - [ErrDomain]: function argument outside its mathematical domain
//   - [ErrArithmetic]: division by zero or 0 raised to a non-positive power
//   - [ErrConvergence]: an iteration cap was exceeded
//   - [ErrInput]: an invalid argument such as a non-integer step count
//
// # Example
//
//	_, err := expr.Evaluate("1d0", nil)
//	if errors.Is(err, calc.ErrArithmetic) {
//	    // division by zero
//	}
package calc
