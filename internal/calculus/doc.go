// Package calculus exposes the evaluator and the numerical procedures to
// callers that hold only strings, such as a command line or an HTTP
// handler.
//
// Every numeric argument is itself a constant formula, so "pi/2" and "1d3"
// are accepted wherever a number is expected. Single-variable operations
// use x unless the engine is derived with [Engine.WithVariable]; the ODE
// operations always use x, v and t.
//
// Errors carry the kinds of package calc and never come with a partial
// result.
package calculus
