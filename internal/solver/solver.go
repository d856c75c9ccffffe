package solver

import (
	"context"
	"fmt"
	"math"

	"github.com/dsconnelly/whirly/internal/integrators"
	"github.com/dsconnelly/whirly/internal/spectral"
)

// Solver integrates dq/dt = L*q + N(q) for a scalar q advected by the flow
// it induces. All operator arrays are precomputed at construction and never
// written afterwards, so a Solver may be shared across goroutines.
type Solver struct {
	tau float64
	m   int
	p   float64
	re  float64
	op  Operator

	k, ell    [][]float64
	diffusion [][]float64 // L = -K²/Re
	inverse   [][]float64 // 1/A at invertible modes, 0 elsewhere
}

// New validates the discretization and precomputes the mode-space operators.
func New(tau float64, m int, p, re float64, op Operator) (*Solver, error) {
	switch {
	case tau <= 0:
		return nil, fmt.Errorf("%w: tau must be positive, got %g", ErrBadConfig, tau)
	case m <= 0 || m%2 != 0:
		return nil, fmt.Errorf("%w: m must be positive and even, got %d", ErrBadConfig, m)
	case p <= 0:
		return nil, fmt.Errorf("%w: p must be positive, got %g", ErrBadConfig, p)
	case re <= 0:
		return nil, fmt.Errorf("%w: re must be positive, got %g", ErrBadConfig, re)
	case op == nil:
		return nil, fmt.Errorf("%w: nil operator", ErrBadConfig)
	}

	s := &Solver{tau: tau, m: m, p: p, re: re, op: op}
	s.k, s.ell = spectral.Wavenumbers(m, p)

	kSq := make([][]float64, m)
	s.diffusion = make([][]float64, m)
	for i := 0; i < m; i++ {
		kSq[i] = make([]float64, m)
		s.diffusion[i] = make([]float64, m)
		for j := 0; j < m; j++ {
			kSq[i][j] = s.k[i][j]*s.k[i][j] + s.ell[i][j]*s.ell[i][j]
			s.diffusion[i][j] = -kSq[i][j] / re
		}
	}

	inversion := op.Inversion(kSq)
	s.inverse = make([][]float64, m)
	for i, row := range inversion {
		s.inverse[i] = make([]float64, m)
		for j, v := range row {
			if v != 0 {
				s.inverse[i][j] = 1 / v
			}
		}
	}

	return s, nil
}

func (s *Solver) Tau() float64       { return s.tau }
func (s *Solver) M() int             { return s.m }
func (s *Solver) P() float64         { return s.p }
func (s *Solver) Re() float64        { return s.re }
func (s *Solver) Operator() Operator { return s.op }

// Diffusion returns the diagonal linear operator. Callers must not modify it.
func (s *Solver) Diffusion() [][]float64 { return s.diffusion }

// Velocity recovers the flow induced by q through the streamfunction:
// u = -d(psi)/dy, v = d(psi)/dx.
func (s *Solver) Velocity(q *spectral.Field) (u, v *spectral.Field) {
	psi := q.MulCoeff(s.inverse)
	return psi.MulI(s.ell).Scale(-1), psi.MulI(s.k)
}

// Nonlinear evaluates the advection tendency -(u*qx + v*qy). The products
// are formed on the sample grid, so the result carries the usual aliasing
// of an untruncated pseudospectral method.
func (s *Solver) Nonlinear(q *spectral.Field) *spectral.Field {
	u, v := s.Velocity(q)
	return u.Mul(q.MulI(s.k)).Add(v.Mul(q.MulI(s.ell))).Scale(-1)
}

// Steps reports the discretization Solve will use for a run to time T with
// output cadence outputTau: the step count n, the snapshot stride skip, and
// the effective step size. T is divided into n equal steps with n chosen so
// the step size is as close to the configured tau as possible; outputTau is
// likewise rounded to a whole number of steps. A non-positive outputTau
// records every step.
func (s *Solver) Steps(T, outputTau float64) (n, skip int, tau float64) {
	n = int(math.Round(T / s.tau))
	if n < 1 {
		n = 1
	}
	tau = T / float64(n)

	skip = 1
	if outputTau > 0 {
		skip = int(math.Round(outputTau / tau))
		if skip < 1 {
			skip = 1
		}
	}
	return n, skip, tau
}

// Solve integrates q0 to time T, recording a snapshot every skip steps as
// reported by [Solver.Steps]. The returned slice always starts with q0 and
// has 1 + n/skip entries on success. On cancellation or numerical blow-up
// the snapshots recorded so far are returned along with a [StepError]
// wrapping [ErrCanceled] or [ErrUnstable].
func (s *Solver) Solve(ctx context.Context, q0 *spectral.Field, T, outputTau float64) ([]*spectral.Field, error) {
	if T <= 0 {
		return nil, fmt.Errorf("%w: final time must be positive, got %g", ErrBadConfig, T)
	}
	if q0.M != s.m || q0.P != s.p {
		return nil, fmt.Errorf("%w: field on %d×%d grid of side %g, solver expects %d and %g",
			ErrBadConfig, q0.M, q0.M, q0.P, s.m, s.p)
	}

	n, skip, tau := s.Steps(T, outputTau)
	stepper := integrators.NewIFRK4(tau, s.diffusion, s.Nonlinear)

	outputs := make([]*spectral.Field, 0, 1+n/skip)
	outputs = append(outputs, q0)

	q := q0
	for i := 1; i <= n; i++ {
		select {
		case <-ctx.Done():
			return outputs, &StepError{Step: i, Time: float64(i-1) * tau, Wrapped: ErrCanceled}
		default:
		}

		q = stepper.Step(q)
		if !q.Finite() {
			return outputs, &StepError{Step: i, Time: float64(i) * tau, Wrapped: ErrUnstable}
		}

		if i%skip == 0 {
			outputs = append(outputs, q)
		}
	}

	return outputs, nil
}
