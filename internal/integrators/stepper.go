package integrators

import (
	"math"

	"github.com/dsconnelly/whirly/internal/spectral"
)

// NonlinearFunc evaluates the nonlinear tendency of a field in mode space.
type NonlinearFunc func(q *spectral.Field) *spectral.Field

// Stepper advances a field by one fixed time step. Step never modifies its
// argument, and steppers hold no mutable state, so a single Stepper may be
// shared across goroutines.
type Stepper interface {
	Step(q *spectral.Field) *spectral.Field
}

// expArray returns exp(c*a) elementwise.
func expArray(c float64, a [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i, row := range a {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = math.Exp(c * v)
		}
	}
	return out
}
