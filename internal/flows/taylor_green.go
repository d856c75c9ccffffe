package flows

import (
	"math"

	"github.com/dsconnelly/whirly/internal/spectral"
)

// TaylorGreen returns the vorticity of a lattice of counter-rotating
// vortices, cells per side. The pattern is a steady solution of the
// inviscid equations and decays as a single Fourier mode under viscosity,
// which makes it the standard verification flow.
func TaylorGreen(m int, p, amplitude float64, cells int) *spectral.Field {
	scale := 2 * math.Pi * float64(cells) / p
	return spectral.FromFunc(m, p, func(x, y float64) float64 {
		return amplitude * math.Sin(scale*x) * math.Sin(scale*y)
	})
}
