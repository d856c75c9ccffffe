package spectral

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Wavenumbers returns the angular wavenumber grids k and ell for an m×m
// Fourier grid on a square domain of side p. Frequencies follow FFT
// ordering (0, 1, ..., m/2-1, -m/2, ..., -1 for even m) scaled by 2π/p.
// k varies along the first axis, ell along the second.
//
// No validation happens here; callers own the m > 0, p > 0 contract.
func Wavenumbers(m int, p float64) (k, ell [][]float64) {
	scale := 2 * math.Pi / p

	freqs := make([]float64, m)
	for i := range freqs {
		if i < (m+1)/2 {
			freqs[i] = scale * float64(i)
		} else {
			freqs[i] = scale * float64(i-m)
		}
	}

	k = make([][]float64, m)
	ell = make([][]float64, m)
	for i := 0; i < m; i++ {
		k[i] = make([]float64, m)
		ell[i] = make([]float64, m)
		for j := 0; j < m; j++ {
			k[i][j] = freqs[i]
			ell[i][j] = freqs[j]
		}
	}

	return k, ell
}

// Grid returns the real-space sample coordinates x and y for an m×m grid
// on [0, p): m+1 evenly spaced points spanning [0, p] with the last
// row and column dropped, so x[i][j] = i·p/m and y[i][j] = j·p/m.
func Grid(m int, p float64) (x, y [][]float64) {
	pts := make([]float64, m+1)
	floats.Span(pts, 0, p)

	x = make([][]float64, m)
	y = make([][]float64, m)
	for i := 0; i < m; i++ {
		x[i] = make([]float64, m)
		y[i] = make([]float64, m)
		for j := 0; j < m; j++ {
			x[i][j] = pts[i]
			y[i][j] = pts[j]
		}
	}

	return x, y
}
