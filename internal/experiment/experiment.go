package experiment

import (
	"context"

	"github.com/dsconnelly/whirly/internal/analysis"
	"github.com/dsconnelly/whirly/internal/config"
	"github.com/dsconnelly/whirly/internal/metrics"
	"github.com/dsconnelly/whirly/internal/solver"
	"github.com/dsconnelly/whirly/internal/spectral"
)

// Series holds the scalar diagnostics sampled at every recorded snapshot.
type Series struct {
	Energy    []float64
	Enstrophy []float64
	Peak      []float64
}

// Result bundles the snapshots of a run with its diagnostics and the final
// metric values.
type Result struct {
	Fields  []*spectral.Field
	Times   []float64
	Series  Series
	Metrics map[string]float64
}

type Experiment struct {
	cfg     *config.Config
	solver  *solver.Solver
	initial *spectral.Field
	metrics []metrics.Metric
}

// New resolves the configured operator and flow through the registry and
// builds the solver.
func New(cfg *config.Config, reg *Registry) (*Experiment, error) {
	op, err := reg.GetOperator(cfg.Operator)
	if err != nil {
		return nil, err
	}
	s, err := solver.New(cfg.Tau, cfg.M, cfg.P, cfg.Re, op)
	if err != nil {
		return nil, err
	}
	q0, err := reg.GetFlow(cfg.Flow, cfg)
	if err != nil {
		return nil, err
	}
	return &Experiment{cfg: cfg, solver: s, initial: q0, metrics: reg.DefaultMetrics()}, nil
}

func (e *Experiment) Solver() *solver.Solver   { return e.solver }
func (e *Experiment) Initial() *spectral.Field { return e.initial }
func (e *Experiment) Config() *config.Config   { return e.cfg }

// Run integrates the experiment and computes diagnostics for every recorded
// snapshot. On cancellation or blow-up the partial result is returned
// alongside the error.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	for _, m := range e.metrics {
		m.Reset()
	}

	_, skip, tau := e.solver.Steps(e.cfg.T, e.cfg.OutputTau)
	fields, err := e.solver.Solve(ctx, e.initial, e.cfg.T, e.cfg.OutputTau)
	if len(fields) == 0 {
		return nil, err
	}

	result := &Result{
		Fields: fields,
		Times:  make([]float64, len(fields)),
		Series: Series{
			Energy:    make([]float64, len(fields)),
			Enstrophy: make([]float64, len(fields)),
			Peak:      make([]float64, len(fields)),
		},
		Metrics: make(map[string]float64, len(e.metrics)),
	}

	for idx, q := range fields {
		t := float64(idx*skip) * tau
		result.Times[idx] = t
		result.Series.Energy[idx] = analysis.Energy(q)
		result.Series.Enstrophy[idx] = analysis.Enstrophy(q)
		result.Series.Peak[idx] = spectral.MaxAbs(q.Real())
		for _, m := range e.metrics {
			m.Observe(q, t)
		}
	}
	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, err
}
