package metrics

import "github.com/dsconnelly/whirly/internal/spectral"

// Metric accumulates a scalar summary over the snapshots of a run.
// Implementations are stateful and not safe for concurrent use; give each
// run its own instances.
type Metric interface {
	Name() string
	Observe(q *spectral.Field, t float64)
	Value() float64
	Reset()
}
