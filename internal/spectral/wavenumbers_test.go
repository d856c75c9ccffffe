package spectral

import (
	"math"
	"testing"
)

func TestWavenumbersOrdering(t *testing.T) {
	// p = 2π makes the scale factor 1, so entries are the raw FFT indices.
	k, ell := Wavenumbers(8, 2*math.Pi)

	want := []float64{0, 1, 2, 3, -4, -3, -2, -1}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if math.Abs(k[i][j]-want[i]) > 1e-12 {
				t.Errorf("k[%d][%d] = %v, want %v", i, j, k[i][j], want[i])
			}
			if math.Abs(ell[i][j]-want[j]) > 1e-12 {
				t.Errorf("ell[%d][%d] = %v, want %v", i, j, ell[i][j], want[j])
			}
		}
	}
}

func TestWavenumbersScale(t *testing.T) {
	tests := []struct {
		name string
		m    int
		p    float64
		i    int
		want float64
	}{
		{"unit domain", 4, 1.0, 1, 2 * math.Pi},
		{"2pi domain", 4, 2 * math.Pi, 1, 1.0},
		{"negative branch", 4, 1.0, 3, -2 * math.Pi},
		{"nyquist", 4, 2 * math.Pi, 2, -2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, _ := Wavenumbers(tt.m, tt.p)
			if math.Abs(k[tt.i][0]-tt.want) > 1e-12 {
				t.Errorf("k[%d][0] = %v, want %v", tt.i, k[tt.i][0], tt.want)
			}
		})
	}
}

func TestGridSpacing(t *testing.T) {
	m, p := 4, 2.0
	x, y := Grid(m, p)

	h := p / float64(m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if math.Abs(x[i][j]-h*float64(i)) > 1e-12 {
				t.Errorf("x[%d][%d] = %v, want %v", i, j, x[i][j], h*float64(i))
			}
			if math.Abs(y[i][j]-h*float64(j)) > 1e-12 {
				t.Errorf("y[%d][%d] = %v, want %v", i, j, y[i][j], h*float64(j))
			}
		}
	}

	// The endpoint p itself is excluded.
	if last := x[m-1][0]; math.Abs(last-(p-h)) > 1e-12 {
		t.Errorf("last grid point = %v, want %v", last, p-h)
	}
}
