package flows

import (
	"math"

	"github.com/dsconnelly/whirly/internal/spectral"
)

// ShearLayer returns the vorticity of a doubly periodic double shear layer:
// two opposed tanh velocity profiles at y = p/4 and y = 3p/4 of the given
// thickness, seeded with a sinusoidal perturbation that triggers
// Kelvin-Helmholtz roll-up. amplitude sets the peak layer vorticity.
func ShearLayer(m int, p, amplitude, thickness, perturbation float64) *spectral.Field {
	return spectral.FromFunc(m, p, func(x, y float64) float64 {
		lower := sechSq(wrap(y-p/4, p) / thickness)
		upper := sechSq(wrap(y-3*p/4, p) / thickness)
		return amplitude*(upper-lower) + perturbation*math.Cos(2*math.Pi*x/p)
	})
}

func sechSq(x float64) float64 {
	c := math.Cosh(x)
	return 1 / (c * c)
}
