// Package viz renders engine results in the terminal.
//
//   - [Result] and [Error]: lipgloss panels for one-shot commands
//   - [PlotTrajectory], [PlotTrajectory2], [PlotFunction]: asciigraph charts
//   - [RunREPL]: an interactive evaluator built on Bubble Tea
//
// # REPL Commands
//
//	a = 2pi           bind a variable
//	sin(a/4)          evaluate with current bindings
//	diff 1 x^3        derivatives at a point
//	integrate 0 1 x^2 definite integral
//	root 1 x^2-2      root near a point
//	max 1 sin(x)      local maximum near a point
//	vars, clear, help
//
// Up/Down recall earlier input; Esc or Ctrl+C quits.
package viz
