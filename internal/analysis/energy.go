package analysis

import (
	"math"

	"github.com/dsconnelly/whirly/internal/spectral"
)

// Energy returns the kinetic energy per unit area of the flow induced by q
// under the Navier-Stokes inversion, (1/2)⟨u² + v²⟩. In mode space this is
// a weighted sum over shells, |q̂|²/K², so no velocity fields are formed.
func Energy(q *spectral.Field) float64 {
	k, ell := spectral.Wavenumbers(q.M, q.P)

	var sum float64
	for i := range q.Coeff {
		for j, v := range q.Coeff[i] {
			kSq := k[i][j]*k[i][j] + ell[i][j]*ell[i][j]
			if kSq == 0 {
				continue
			}
			sum += (real(v)*real(v) + imag(v)*imag(v)) / kSq
		}
	}
	m2 := float64(q.M) * float64(q.M)
	return sum / (2 * m2 * m2)
}

// Enstrophy returns (1/2)⟨q²⟩, the quadratic invariant the inviscid
// dynamics conserve alongside energy.
func Enstrophy(q *spectral.Field) float64 {
	m2 := float64(q.M) * float64(q.M)
	return sumSquares(q) / (2 * m2 * m2)
}

// Norm returns the root-mean-square of the field over the domain.
func Norm(q *spectral.Field) float64 {
	m2 := float64(q.M) * float64(q.M)
	return math.Sqrt(sumSquares(q)) / m2
}

func sumSquares(q *spectral.Field) float64 {
	var sum float64
	for i := range q.Coeff {
		for _, v := range q.Coeff[i] {
			sum += real(v)*real(v) + imag(v)*imag(v)
		}
	}
	return sum
}
