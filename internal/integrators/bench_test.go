package integrators

import (
	"math"
	"testing"

	"github.com/dsconnelly/whirly/internal/spectral"
)

func benchField(m int) *spectral.Field {
	return spectral.FromFunc(m, 2*math.Pi, func(x, y float64) float64 {
		return math.Sin(x)*math.Sin(y) + 0.5*math.Cos(2*x)
	})
}

func benchNonlinear(q *spectral.Field) *spectral.Field {
	return q.Mul(q).Scale(-0.5)
}

func BenchmarkIFRK4(b *testing.B) {
	const m = 64
	q := benchField(m)
	stepper := NewIFRK4(0.001, laplacianArray(m, 2*math.Pi, 1000), benchNonlinear)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q = stepper.Step(q)
	}
}

func BenchmarkIFEuler(b *testing.B) {
	const m = 64
	q := benchField(m)
	stepper := NewIFEuler(0.001, laplacianArray(m, 2*math.Pi, 1000), benchNonlinear)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q = stepper.Step(q)
	}
}
