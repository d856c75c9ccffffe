package flows

import (
	"math"

	"github.com/dsconnelly/whirly/internal/spectral"
)

// VortexPair returns a dipole: two Gaussian vortices of opposite sign
// centered on the domain and separated along y, which self-propel along x.
// Distances are minimum-image so the blobs stay smooth across the periodic
// seams.
func VortexPair(m int, p, amplitude, radius, separation float64) *spectral.Field {
	half := p / 2
	variance := 2 * radius * radius
	return spectral.FromFunc(m, p, func(x, y float64) float64 {
		dx := wrap(x-half, p)
		up := wrap(y-(half+separation/2), p)
		down := wrap(y-(half-separation/2), p)
		return amplitude * (math.Exp(-(dx*dx+up*up)/variance) - math.Exp(-(dx*dx+down*down)/variance))
	})
}

// wrap maps d to the equivalent offset in [-p/2, p/2).
func wrap(d, p float64) float64 {
	return d - p*math.Round(d/p)
}
