package integrators

import "github.com/dsconnelly/whirly/internal/spectral"

// IFEuler is the integrating-factor form of forward Euler: the linear
// operator advances exactly, the nonlinear term to first order. Useful as a
// cheap baseline when comparing steppers.
type IFEuler struct {
	tau       float64
	e         [][]float64 // exp(tau*L)
	nonlinear NonlinearFunc
}

func NewIFEuler(tau float64, linear [][]float64, nonlinear NonlinearFunc) *IFEuler {
	return &IFEuler{tau: tau, e: expArray(tau, linear), nonlinear: nonlinear}
}

func (s *IFEuler) Step(q *spectral.Field) *spectral.Field {
	return q.AddScaled(s.tau, s.nonlinear(q)).MulCoeff(s.e)
}
