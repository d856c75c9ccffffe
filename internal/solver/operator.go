package solver

import "math"

// Operator distinguishes the transport equations that share the
// vorticity-streamfunction machinery. An implementation supplies the
// diagonal mode-space operator A relating the advected scalar to the
// streamfunction, A*psi = q. Entries of A may be zero (the constant mode
// at least); inversion masks them to zero rather than dividing.
type Operator interface {
	Name() string
	Inversion(kSq [][]float64) [][]float64
}

// NavierStokes selects 2D incompressible Navier-Stokes: vorticity is the
// Laplacian of the streamfunction, so A = -K².
type NavierStokes struct{}

func (NavierStokes) Name() string { return "navier-stokes" }

func (NavierStokes) Inversion(kSq [][]float64) [][]float64 {
	out := make([][]float64, len(kSq))
	for i, row := range kSq {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = -v
		}
	}
	return out
}

// SQG selects surface quasi-geostrophic transport, where the advected
// buoyancy relates to the streamfunction through the square root of the
// Laplacian: A = -|K|.
type SQG struct{}

func (SQG) Name() string { return "sqg" }

func (SQG) Inversion(kSq [][]float64) [][]float64 {
	out := make([][]float64, len(kSq))
	for i, row := range kSq {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = -math.Sqrt(v)
		}
	}
	return out
}
