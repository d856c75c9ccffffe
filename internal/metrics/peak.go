package metrics

import "github.com/dsconnelly/whirly/internal/spectral"

// Peak reports the largest absolute vorticity seen across all observed
// snapshots.
type Peak struct {
	name string
	max  float64
}

func NewPeak() *Peak {
	return &Peak{name: "peak"}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(q *spectral.Field, t float64) {
	if v := spectral.MaxAbs(q.Real()); v > p.max {
		p.max = v
	}
}

func (p *Peak) Value() float64 {
	return p.max
}

func (p *Peak) Reset() {
	p.max = 0
}
