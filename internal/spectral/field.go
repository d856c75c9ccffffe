package spectral

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/cmplxs"
)

// Field holds the m×m Fourier coefficients of a real scalar field on the
// doubly periodic square [0, p)². Coefficients use the unnormalized forward
// transform convention, matching [FromReal].
//
// Fields are immutable by convention: operations return new Fields and
// never modify their receivers or arguments.
type Field struct {
	M     int
	P     float64
	Coeff [][]complex128
}

// New returns a zero field on an m×m grid over a domain of side p.
func New(m int, p float64) *Field {
	coeff := make([][]complex128, m)
	for i := range coeff {
		coeff[i] = make([]complex128, m)
	}
	return &Field{M: m, P: p, Coeff: coeff}
}

// FromReal transforms an m×m grid of real samples into a Field.
func FromReal(samples [][]float64, p float64) *Field {
	return &Field{M: len(samples), P: p, Coeff: fft.FFT2Real(samples)}
}

// FromFunc samples f on the [Grid] points of an m×m domain of side p and
// transforms the result.
func FromFunc(m int, p float64, f func(x, y float64) float64) *Field {
	x, y := Grid(m, p)
	samples := make([][]float64, m)
	for i := range samples {
		samples[i] = make([]float64, m)
		for j := range samples[i] {
			samples[i][j] = f(x[i][j], y[i][j])
		}
	}
	return FromReal(samples, p)
}

// Clone returns a deep copy.
func (f *Field) Clone() *Field {
	out := New(f.M, f.P)
	for i := range f.Coeff {
		copy(out.Coeff[i], f.Coeff[i])
	}
	return out
}

// Real materializes the field on its sample grid, discarding the imaginary
// round-off the inverse transform leaves behind.
func (f *Field) Real() [][]float64 {
	inv := fft.IFFT2(f.Coeff)
	out := make([][]float64, f.M)
	eachRow(f.M, func(start, end int) {
		for i := start; i < end; i++ {
			row := make([]float64, f.M)
			for j, v := range inv[i] {
				row[j] = real(v)
			}
			out[i] = row
		}
	})
	return out
}

// Finite reports whether every coefficient is free of NaNs and infinities.
// A false result means the producing computation has diverged.
func (f *Field) Finite() bool {
	for i := range f.Coeff {
		for _, v := range f.Coeff[i] {
			if cmplx.IsNaN(v) || cmplx.IsInf(v) {
				return false
			}
		}
	}
	return true
}

// Add returns f + g.
func (f *Field) Add(g *Field) *Field {
	f.mustMatch(g)
	out := New(f.M, f.P)
	for i := range f.Coeff {
		cmplxs.AddTo(out.Coeff[i], f.Coeff[i], g.Coeff[i])
	}
	return out
}

// Sub returns f - g.
func (f *Field) Sub(g *Field) *Field {
	f.mustMatch(g)
	out := New(f.M, f.P)
	for i := range f.Coeff {
		cmplxs.SubTo(out.Coeff[i], f.Coeff[i], g.Coeff[i])
	}
	return out
}

// Scale returns c·f.
func (f *Field) Scale(c complex128) *Field {
	out := New(f.M, f.P)
	for i := range f.Coeff {
		cmplxs.ScaleTo(out.Coeff[i], c, f.Coeff[i])
	}
	return out
}

// AddScaled returns f + alpha·g.
func (f *Field) AddScaled(alpha float64, g *Field) *Field {
	f.mustMatch(g)
	out := New(f.M, f.P)
	for i := range f.Coeff {
		cmplxs.AddScaledTo(out.Coeff[i], f.Coeff[i], complex(alpha, 0), g.Coeff[i])
	}
	return out
}

// MulCoeff scales each coefficient by the matching entry of a real array,
// the mode-space application of diagonal operators.
func (f *Field) MulCoeff(a [][]float64) *Field {
	f.mustMatchReal(a)
	out := New(f.M, f.P)
	eachRow(f.M, func(start, end int) {
		for i := start; i < end; i++ {
			fr, ar, or := f.Coeff[i], a[i], out.Coeff[i]
			for j := range fr {
				or[j] = fr[j] * complex(ar[j], 0)
			}
		}
	})
	return out
}

// MulI scales each coefficient by i times the matching entry of a real
// array. Spectral derivatives are MulI against a wavenumber grid.
func (f *Field) MulI(a [][]float64) *Field {
	f.mustMatchReal(a)
	out := New(f.M, f.P)
	eachRow(f.M, func(start, end int) {
		for i := start; i < end; i++ {
			fr, ar, or := f.Coeff[i], a[i], out.Coeff[i]
			for j := range fr {
				or[j] = fr[j] * complex(0, ar[j])
			}
		}
	})
	return out
}

// Mul returns the field representing the pointwise physical-space product
// of f and g: both operands are materialized, multiplied on the sample
// grid, and transformed forward again.
func (f *Field) Mul(g *Field) *Field {
	f.mustMatch(g)

	fr := fft.IFFT2(f.Coeff)
	gr := fft.IFFT2(g.Coeff)

	prod := make([][]complex128, f.M)
	eachRow(f.M, func(start, end int) {
		for i := start; i < end; i++ {
			row := make([]complex128, f.M)
			for j := range row {
				row[j] = complex(real(fr[i][j])*real(gr[i][j]), 0)
			}
			prod[i] = row
		}
	})

	return &Field{M: f.M, P: f.P, Coeff: fft.FFT2(prod)}
}

func (f *Field) mustMatch(g *Field) {
	if f.M != g.M || f.P != g.P {
		panic(fmt.Sprintf("spectral: field mismatch (%d, %g) vs (%d, %g)", f.M, f.P, g.M, g.P))
	}
}

func (f *Field) mustMatchReal(a [][]float64) {
	if len(a) != f.M {
		panic(fmt.Sprintf("spectral: coefficient array has %d rows, field has %d", len(a), f.M))
	}
}

// MaxAbs returns the largest absolute value on a sample grid, the natural
// scale for symmetric plotting bounds around zero.
func MaxAbs(samples [][]float64) float64 {
	var max float64
	for i := range samples {
		for _, v := range samples[i] {
			if a := math.Abs(v); a > max {
				max = a
			}
		}
	}
	return max
}
