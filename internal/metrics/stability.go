package metrics

import "github.com/dsconnelly/whirly/internal/spectral"

// Stability reports the fraction of observed snapshots that stayed finite
// with peak vorticity below a threshold. 1.0 means the run never strayed.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{name: "stability", threshold: threshold}
}

func (s *Stability) Name() string { return s.name }

func (s *Stability) Observe(q *spectral.Field, t float64) {
	s.samples++
	if !q.Finite() || spectral.MaxAbs(q.Real()) > s.threshold {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
