package metrics

import (
	"math"
	"testing"

	"github.com/dsconnelly/whirly/internal/spectral"
)

func taylorGreen(m int, p, amplitude float64) *spectral.Field {
	return spectral.FromFunc(m, p, func(x, y float64) float64 {
		return amplitude * math.Sin(x) * math.Sin(y)
	})
}

func TestDissipation(t *testing.T) {
	const m = 16
	p := 2 * math.Pi

	d := NewDissipation()
	d.Observe(taylorGreen(m, p, 1.0), 0)   // energy 1/16
	d.Observe(taylorGreen(m, p, 0.5), 1.0) // energy 1/64

	want := (1.0/16 - 1.0/64) / 1.0
	if got := d.Value(); math.Abs(got-want) > 1e-12 {
		t.Errorf("Value = %g, want %g", got, want)
	}

	d.Reset()
	if got := d.Value(); got != 0 {
		t.Errorf("Value after reset = %g, want 0", got)
	}
}

func TestDissipationNeedsTwoSamples(t *testing.T) {
	d := NewDissipation()
	if got := d.Value(); got != 0 {
		t.Errorf("Value with no samples = %g", got)
	}

	d.Observe(taylorGreen(16, 2*math.Pi, 1.0), 0)
	if got := d.Value(); got != 0 {
		t.Errorf("Value with one sample = %g", got)
	}
}

func TestPeak(t *testing.T) {
	const m = 16
	p := 2 * math.Pi

	pk := NewPeak()
	pk.Observe(taylorGreen(m, p, 1.0), 0)
	pk.Observe(taylorGreen(m, p, 2.0), 0.1)
	pk.Observe(taylorGreen(m, p, 0.3), 0.2)

	if got := pk.Value(); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("Value = %g, want 2.0", got)
	}

	pk.Reset()
	if got := pk.Value(); got != 0 {
		t.Errorf("Value after reset = %g, want 0", got)
	}
}

func TestStability(t *testing.T) {
	const m = 16
	p := 2 * math.Pi

	s := NewStability(1.5)
	s.Observe(taylorGreen(m, p, 1.0), 0)
	s.Observe(taylorGreen(m, p, 2.0), 0.1)

	if got := s.Value(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Value = %g, want 0.5", got)
	}

	s.Reset()
	if got := s.Value(); got != 1.0 {
		t.Errorf("Value after reset = %g, want 1.0", got)
	}
}

func TestStabilityCatchesBlowUp(t *testing.T) {
	const m = 8
	p := 2 * math.Pi

	bad := spectral.New(m, p)
	bad.Coeff[1][1] = complex(math.NaN(), 0)

	s := NewStability(1e6)
	s.Observe(bad, 0)
	if got := s.Value(); got != 0 {
		t.Errorf("Value = %g, want 0 for a NaN field", got)
	}
}
