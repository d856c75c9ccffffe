// Package solver advances doubly periodic 2D transport equations in
// vorticity-streamfunction form.
//
// A [Solver] couples three pieces:
//
//   - the diagonal diffusion operator L = -K²/Re, applied exactly by the
//     integrating-factor steppers
//   - a streamfunction inversion selected by an [Operator]
//   - the advection term N(q) = -(u*qx + v*qy), evaluated pseudospectrally
//
// # Example
//
//	s, _ := solver.New(0.01, 128, 2*math.Pi, 1000, solver.NavierStokes{})
//	fields, err := s.Solve(ctx, q0, 10.0, 0.1)
//
// # Thread Safety
//
// Solvers are immutable after construction. Nonlinear, Velocity, and Solve
// may be called concurrently from independent goroutines.
package solver
