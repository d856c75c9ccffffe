package flows

import (
	"math"
	"math/rand"

	"github.com/dsconnelly/whirly/internal/spectral"
)

// Random returns band-limited random vorticity: Gaussian white noise
// restricted to the annulus kmin <= |k| <= kmax of integer mode indices and
// rescaled so the peak vorticity equals amplitude. The same seed always
// produces the same field.
func Random(m int, p, amplitude float64, kmin, kmax int, seed int64) *spectral.Field {
	rng := rand.New(rand.NewSource(seed))

	samples := make([][]float64, m)
	for i := range samples {
		samples[i] = make([]float64, m)
		for j := range samples[i] {
			samples[i][j] = rng.NormFloat64()
		}
	}

	f := spectral.FromReal(samples, p)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			n := math.Sqrt(float64(index(i, m)*index(i, m) + index(j, m)*index(j, m)))
			if n < float64(kmin) || n > float64(kmax) {
				f.Coeff[i][j] = 0
			}
		}
	}

	peak := spectral.MaxAbs(f.Real())
	if peak == 0 {
		return f
	}
	return f.Scale(complex(amplitude/peak, 0))
}

// index maps a row or column position to its signed mode index.
func index(i, m int) int {
	if i > m/2 {
		return i - m
	}
	return i
}
