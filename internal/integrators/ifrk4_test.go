package integrators

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/dsconnelly/whirly/internal/spectral"
)

func zeroNonlinear(q *spectral.Field) *spectral.Field {
	return spectral.New(q.M, q.P)
}

func scaleNonlinear(c complex128) NonlinearFunc {
	return func(q *spectral.Field) *spectral.Field {
		return q.Scale(c)
	}
}

func uniformArray(m int, v float64) [][]float64 {
	out := make([][]float64, m)
	for i := range out {
		out[i] = make([]float64, m)
		for j := range out[i] {
			out[i][j] = v
		}
	}
	return out
}

func laplacianArray(m int, p, re float64) [][]float64 {
	k, ell := spectral.Wavenumbers(m, p)
	out := make([][]float64, m)
	for i := range out {
		out[i] = make([]float64, m)
		for j := range out[i] {
			out[i][j] = -(k[i][j]*k[i][j] + ell[i][j]*ell[i][j]) / re
		}
	}
	return out
}

func TestIFRK4DiffusionExact(t *testing.T) {
	const m, re, tau = 8, 10.0, 0.05
	p := 2 * math.Pi

	linear := laplacianArray(m, p, re)
	q := spectral.New(m, p)
	q.Coeff[1][2] = complex(3.0, -1.5)
	q.Coeff[m-1][m-2] = complex(3.0, 1.5)
	q.Coeff[2][0] = complex(-0.25, 0.8)
	q.Coeff[m-2][0] = complex(-0.25, -0.8)

	got := NewIFRK4(tau, linear, zeroNonlinear).Step(q)

	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			want := q.Coeff[i][j] * complex(math.Exp(tau*linear[i][j]), 0)
			if diff := cmplx.Abs(got.Coeff[i][j] - want); diff > 1e-14 {
				t.Errorf("mode (%d, %d): got %v, want %v (diff %g)", i, j, got.Coeff[i][j], want, diff)
			}
		}
	}
}

func TestIFRK4ReducesToRK4(t *testing.T) {
	const m, tau = 4, 0.1
	c := complex(-0.7, 0.3)

	q := spectral.New(m, 1.0)
	q.Coeff[1][1] = complex(2.0, 0.5)

	got := NewIFRK4(tau, uniformArray(m, 0), scaleNonlinear(c)).Step(q)

	z := c * complex(tau, 0)
	factor := 1 + z + z*z/2 + z*z*z/6 + z*z*z*z/24
	want := q.Coeff[1][1] * factor
	if diff := cmplx.Abs(got.Coeff[1][1] - want); diff > 1e-14 {
		t.Errorf("amplification: got %v, want %v (diff %g)", got.Coeff[1][1], want, diff)
	}
	if got.Coeff[0][0] != 0 {
		t.Errorf("empty mode acquired amplitude %v", got.Coeff[0][0])
	}
}

func globalError(s Stepper, q0 *spectral.Field, steps int, want complex128) float64 {
	q := q0
	for n := 0; n < steps; n++ {
		q = s.Step(q)
	}
	return cmplx.Abs(q.Coeff[1][1] - want)
}

func TestIFRK4ConvergenceOrder(t *testing.T) {
	const m, l, T = 4, -1.0, 0.4
	c := complex(0.5, 0)

	q0 := spectral.New(m, 1.0)
	q0.Coeff[1][1] = 1

	linear := uniformArray(m, l)
	want := complex(math.Exp((l+real(c))*T), 0)

	coarse := globalError(NewIFRK4(0.1, linear, scaleNonlinear(c)), q0, 4, want)
	fine := globalError(NewIFRK4(0.05, linear, scaleNonlinear(c)), q0, 8, want)

	if ratio := coarse / fine; ratio < 12 || ratio > 20 {
		t.Errorf("error ratio %.2f outside fourth-order range [12, 20] (coarse %g, fine %g)",
			ratio, coarse, fine)
	}
}

func TestIFEulerDiffusionExact(t *testing.T) {
	const m, re, tau = 8, 10.0, 0.05
	p := 2 * math.Pi

	linear := laplacianArray(m, p, re)
	q := spectral.New(m, p)
	q.Coeff[3][1] = complex(1.0, 2.0)
	q.Coeff[m-3][m-1] = complex(1.0, -2.0)

	got := NewIFEuler(tau, linear, zeroNonlinear).Step(q)

	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			want := q.Coeff[i][j] * complex(math.Exp(tau*linear[i][j]), 0)
			if diff := cmplx.Abs(got.Coeff[i][j] - want); diff > 1e-14 {
				t.Errorf("mode (%d, %d): got %v, want %v (diff %g)", i, j, got.Coeff[i][j], want, diff)
			}
		}
	}
}

func TestIFEulerConvergenceOrder(t *testing.T) {
	const m, l, T = 4, -1.0, 0.4
	c := complex(0.5, 0)

	q0 := spectral.New(m, 1.0)
	q0.Coeff[1][1] = 1

	linear := uniformArray(m, l)
	want := complex(math.Exp((l+real(c))*T), 0)

	coarse := globalError(NewIFEuler(0.1, linear, scaleNonlinear(c)), q0, 4, want)
	fine := globalError(NewIFEuler(0.05, linear, scaleNonlinear(c)), q0, 8, want)

	if ratio := coarse / fine; ratio < 1.8 || ratio > 2.2 {
		t.Errorf("error ratio %.2f outside first-order range [1.8, 2.2] (coarse %g, fine %g)",
			ratio, coarse, fine)
	}
}

func TestStepPreservesInput(t *testing.T) {
	const m = 8
	p := 2 * math.Pi

	q := spectral.FromFunc(m, p, func(x, y float64) float64 {
		return math.Sin(x)*math.Sin(y) + 0.3*math.Cos(2*x)
	})
	before := q.Clone()

	quadratic := func(f *spectral.Field) *spectral.Field {
		return f.Mul(f).Scale(-0.5)
	}
	steppers := []Stepper{
		NewIFRK4(0.01, laplacianArray(m, p, 100), quadratic),
		NewIFEuler(0.01, laplacianArray(m, p, 100), quadratic),
	}

	for _, s := range steppers {
		s.Step(q)
		for i := 0; i < m; i++ {
			for j := 0; j < m; j++ {
				if q.Coeff[i][j] != before.Coeff[i][j] {
					t.Fatalf("step mutated input at mode (%d, %d)", i, j)
				}
			}
		}
	}
}
