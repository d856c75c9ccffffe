package metrics

import (
	"github.com/dsconnelly/whirly/internal/analysis"
	"github.com/dsconnelly/whirly/internal/spectral"
)

// Dissipation reports the mean kinetic energy dissipation rate across the
// observed snapshots, (E_first - E_last)/(t_last - t_first). Positive for
// decaying turbulence.
type Dissipation struct {
	name          string
	samples       int
	firstE, lastE float64
	firstT, lastT float64
}

func NewDissipation() *Dissipation {
	return &Dissipation{name: "dissipation"}
}

func (d *Dissipation) Name() string { return d.name }

func (d *Dissipation) Observe(q *spectral.Field, t float64) {
	e := analysis.Energy(q)
	if d.samples == 0 {
		d.firstE, d.firstT = e, t
	}
	d.lastE, d.lastT = e, t
	d.samples++
}

func (d *Dissipation) Value() float64 {
	if d.samples < 2 || d.lastT == d.firstT {
		return 0
	}
	return (d.firstE - d.lastE) / (d.lastT - d.firstT)
}

func (d *Dissipation) Reset() {
	d.samples = 0
	d.firstE, d.lastE = 0, 0
	d.firstT, d.lastT = 0, 0
}
