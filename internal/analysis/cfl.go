package analysis

import (
	"math"

	"github.com/dsconnelly/whirly/internal/spectral"
)

// CFL returns the advective Courant number max(|u|, |v|)·tau/h for grid
// spacing h = p/m. Values well below one indicate a comfortably resolved
// step; the integrating-factor schemes have no hard stability limit here,
// so this is a resolution diagnostic rather than a constraint.
func CFL(u, v *spectral.Field, tau float64) float64 {
	speed := math.Max(spectral.MaxAbs(u.Real()), spectral.MaxAbs(v.Real()))
	h := u.P / float64(u.M)
	return speed * tau / h
}
