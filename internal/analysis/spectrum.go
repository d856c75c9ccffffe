package analysis

import (
	"math"

	"github.com/dsconnelly/whirly/internal/spectral"
)

// Spectrum returns the isotropic kinetic energy spectrum of q binned by
// integer wavenumber shell: entry n holds the energy of modes whose index
// magnitude rounds to n, for n up to m/2. The constant mode carries no
// energy, and corner modes beyond the last full shell are dropped.
func Spectrum(q *spectral.Field) []float64 {
	k, ell := spectral.Wavenumbers(q.M, q.P)
	bins := make([]float64, q.M/2+1)
	m2 := float64(q.M) * float64(q.M)

	for i := range q.Coeff {
		for j, v := range q.Coeff[i] {
			kSq := k[i][j]*k[i][j] + ell[i][j]*ell[i][j]
			if kSq == 0 {
				continue
			}

			si := float64(signedIndex(i, q.M))
			sj := float64(signedIndex(j, q.M))
			shell := int(math.Round(math.Sqrt(si*si + sj*sj)))
			if shell >= len(bins) {
				continue
			}

			bins[shell] += (real(v)*real(v) + imag(v)*imag(v)) / kSq / (2 * m2 * m2)
		}
	}
	return bins
}

func signedIndex(i, m int) int {
	if i > m/2 {
		return i - m
	}
	return i
}
