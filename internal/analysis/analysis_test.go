package analysis

import (
	"math"
	"testing"

	"github.com/dsconnelly/whirly/internal/spectral"
)

// For q = sin(x)·sin(y) on [0, 2π)² the induced velocity is
// u = sin(x)·cos(y)/2, v = -cos(x)·sin(y)/2, so the quadratic diagnostics
// have closed forms.
func TestTaylorGreenDiagnostics(t *testing.T) {
	const m = 16
	p := 2 * math.Pi

	q := spectral.FromFunc(m, p, func(x, y float64) float64 {
		return math.Sin(x) * math.Sin(y)
	})

	if e := Energy(q); math.Abs(e-1.0/16) > 1e-12 {
		t.Errorf("Energy = %g, want 1/16", e)
	}
	if z := Enstrophy(q); math.Abs(z-1.0/8) > 1e-12 {
		t.Errorf("Enstrophy = %g, want 1/8", z)
	}
	if n := Norm(q); math.Abs(n-0.5) > 1e-12 {
		t.Errorf("Norm = %g, want 1/2", n)
	}
}

func TestNormZeroField(t *testing.T) {
	if n := Norm(spectral.New(8, 2*math.Pi)); n != 0 {
		t.Errorf("Norm of zero field = %g", n)
	}
}

func TestSpectrumSingleShell(t *testing.T) {
	const m = 16
	p := 2 * math.Pi

	q := spectral.FromFunc(m, p, func(x, y float64) float64 {
		return math.Sin(x) * math.Sin(y)
	})

	bins := Spectrum(q)
	if len(bins) != m/2+1 {
		t.Fatalf("got %d shells, want %d", len(bins), m/2+1)
	}

	// All four excited modes sit at |index| = √2, which rounds to shell 1.
	if math.Abs(bins[1]-1.0/16) > 1e-12 {
		t.Errorf("shell 1 holds %g, want all the energy (1/16)", bins[1])
	}
	var rest float64
	for n, b := range bins {
		if n != 1 {
			rest += b
		}
	}
	if rest > 1e-12 {
		t.Errorf("energy leaked into other shells: %g", rest)
	}
}

func TestSpectrumSumsToEnergy(t *testing.T) {
	const m = 32
	p := 2 * math.Pi

	// Band-limited field, so no energy hides in the dropped corner modes.
	q := spectral.FromFunc(m, p, func(x, y float64) float64 {
		return math.Sin(x)*math.Sin(y) + 0.5*math.Cos(3*x)*math.Sin(4*y) - 0.2*math.Sin(2*x+5*y)
	})

	var total float64
	for _, b := range Spectrum(q) {
		total += b
	}
	if e := Energy(q); math.Abs(total-e) > 1e-12*e {
		t.Errorf("spectrum sums to %g, Energy = %g", total, e)
	}
}

func TestCFL(t *testing.T) {
	const m, tau = 16, 0.1
	p := 2 * math.Pi

	u := spectral.FromFunc(m, p, func(x, y float64) float64 {
		return math.Sin(x) * math.Cos(y)
	})
	v := spectral.FromFunc(m, p, func(x, y float64) float64 {
		return 0.25 * math.Cos(x)
	})

	want := 1.0 * tau / (p / m) // |u| peaks at 1 on the grid
	if got := CFL(u, v, tau); math.Abs(got-want) > 1e-9 {
		t.Errorf("CFL = %g, want %g", got, want)
	}
}
