package sweep

import (
	"context"
	"fmt"
	"math"

	"github.com/dsconnelly/whirly/internal/analysis"
	"github.com/dsconnelly/whirly/internal/config"
	"github.com/dsconnelly/whirly/internal/experiment"
	"github.com/dsconnelly/whirly/internal/solver"
	"github.com/dsconnelly/whirly/internal/spectral"
)

// Report summarizes a timestep refinement study. Errors[i] is the spectral
// norm of the difference between the endpoint at Taus[i] and the reference
// endpoint; Orders[i] is the observed convergence order between consecutive
// levels (zero at the coarsest level).
type Report struct {
	Taus   []float64
	Errors []float64
	Orders []float64
}

// TimestepStudy integrates the configured flow to time T at successively
// halved timesteps, starting from cfg.Tau, and measures each endpoint against
// a reference computed with the timestep halved once more beyond the finest
// level.
func TimestepStudy(ctx context.Context, cfg *config.Config, reg *experiment.Registry, levels int) (*Report, error) {
	if levels < 2 {
		return nil, fmt.Errorf("refinement study needs at least two levels, got %d", levels)
	}

	op, err := reg.GetOperator(cfg.Operator)
	if err != nil {
		return nil, err
	}
	q0, err := reg.GetFlow(cfg.Flow, cfg)
	if err != nil {
		return nil, err
	}

	reference, err := endpoint(ctx, cfg, op, q0, cfg.Tau/float64(int(1)<<levels))
	if err != nil {
		return nil, fmt.Errorf("reference run: %w", err)
	}

	report := &Report{
		Taus:   make([]float64, levels),
		Errors: make([]float64, levels),
		Orders: make([]float64, levels),
	}

	for level := 0; level < levels; level++ {
		tau := cfg.Tau / float64(int(1)<<level)
		qT, err := endpoint(ctx, cfg, op, q0, tau)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", level, err)
		}

		report.Taus[level] = tau
		report.Errors[level] = analysis.Norm(qT.Sub(reference))
		if level > 0 && report.Errors[level] > 0 {
			report.Orders[level] = math.Log2(report.Errors[level-1] / report.Errors[level])
		}

		fmt.Printf("Refinement %d/%d: tau=%.6f error=%.3e\n", level+1, levels, tau, report.Errors[level])
	}

	return report, nil
}

// endpoint integrates q0 to time cfg.T with the given timestep and returns
// only the final snapshot.
func endpoint(ctx context.Context, cfg *config.Config, op solver.Operator, q0 *spectral.Field, tau float64) (*spectral.Field, error) {
	s, err := solver.New(tau, cfg.M, cfg.P, cfg.Re, op)
	if err != nil {
		return nil, err
	}

	fields, err := s.Solve(ctx, q0, cfg.T, cfg.T)
	if err != nil {
		return nil, err
	}

	return fields[len(fields)-1], nil
}
