// Package expr evaluates algebraic formulas over single-letter variables.
//
// The grammar covers decimal numbers, parentheses, the binary operators
// + - * / ^ (with ** accepted for ^), the constant pi, the unary functions
// listed by [Functions], and implied multiplication between adjacent values:
//
//	v, err := expr.Evaluate("2x+3/(x^4+5)", expr.Bindings{"x": 1})
//	// v == 2.5
//
// Because the formula usually travels inside a URL path, division may also
// be spelled d or div; [Normalize] rewrites those spellings to / once,
// before evaluation, leaving function names such as round intact.
//
// # Precedence
//
// + and - bind loosest, then * and /, then ^. Operators of equal precedence
// are applied left to right, ^ included, so 2^3^2 is 64. A leading minus
// that is not part of a number literal negates everything it multiplies:
// -(x+1)^2 is -1*(x+1)^2.
//
// # Variables
//
// Variables are resolved while parsing, never by rewriting the text, so a
// bound x never leaks into exp(...) and a bound t never leaks into tan(...).
// Function names and pi take priority over variables; d is reserved for
// division and cannot be bound.
package expr
