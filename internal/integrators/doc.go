// Package integrators advances ordinary differential equations with
// fixed-step explicit steppers.
//
// A [Stepper] maps a [System] and a state at time t to the state at t+dt.
// [SolveFirstOrder] and [SolveSecondOrder] drive a stepper over equal steps
// and collect the [Trajectory]. Steppers keep scratch buffers between
// steps and are not safe for concurrent use; obtain one per solve from a
// [Registry].
package integrators
