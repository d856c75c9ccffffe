package integrators

import "github.com/dsconnelly/whirly/internal/spectral"

// IFRK4 is the integrating-factor form of the classical fourth-order
// Runge-Kutta scheme. The linear operator is diagonal in mode space, so its
// propagator exp(tau*L) is applied exactly between stages and only the
// nonlinear term is integrated approximately. When the nonlinear term
// vanishes a step reduces to the exact solution of dq/dt = L*q; when L
// vanishes it reduces to classical RK4.
type IFRK4 struct {
	tau       float64
	e         [][]float64 // exp(tau*L)
	eHalf     [][]float64 // exp(tau*L/2)
	nonlinear NonlinearFunc
}

func NewIFRK4(tau float64, linear [][]float64, nonlinear NonlinearFunc) *IFRK4 {
	return &IFRK4{
		tau:       tau,
		e:         expArray(tau, linear),
		eHalf:     expArray(tau/2, linear),
		nonlinear: nonlinear,
	}
}

func (s *IFRK4) Step(q *spectral.Field) *spectral.Field {
	half := s.tau / 2

	n0 := s.nonlinear(q)
	a := q.AddScaled(half, n0).MulCoeff(s.eHalf)

	n1 := s.nonlinear(a)
	b := q.MulCoeff(s.eHalf).AddScaled(half, n1)

	n2 := s.nonlinear(b)
	c := q.MulCoeff(s.e).AddScaled(s.tau, n2.MulCoeff(s.eHalf))

	n3 := s.nonlinear(c)

	sum := n0.MulCoeff(s.e).AddScaled(2, n1.Add(n2).MulCoeff(s.eHalf)).Add(n3)
	return q.MulCoeff(s.e).AddScaled(s.tau/6, sum)
}
