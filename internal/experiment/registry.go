package experiment

import (
	"fmt"

	"github.com/dsconnelly/whirly/internal/config"
	"github.com/dsconnelly/whirly/internal/flows"
	"github.com/dsconnelly/whirly/internal/integrators"
	"github.com/dsconnelly/whirly/internal/metrics"
	"github.com/dsconnelly/whirly/internal/solver"
	"github.com/dsconnelly/whirly/internal/spectral"
)

// DefaultStabilityThreshold bounds the peak vorticity a run may reach while
// still counting as stable.
const DefaultStabilityThreshold = 1e6

type FlowFunc func(cfg *config.Config) *spectral.Field

type StepperFunc func(tau float64, linear [][]float64, nonlinear integrators.NonlinearFunc) integrators.Stepper

type Registry struct {
	operators map[string]func() solver.Operator
	flows     map[string]FlowFunc
	steppers  map[string]StepperFunc
}

func NewRegistry() *Registry {
	r := &Registry{
		operators: make(map[string]func() solver.Operator),
		flows:     make(map[string]FlowFunc),
		steppers:  make(map[string]StepperFunc),
	}

	r.operators["navier-stokes"] = func() solver.Operator { return solver.NavierStokes{} }
	r.operators["sqg"] = func() solver.Operator { return solver.SQG{} }

	r.flows["taylor-green"] = func(cfg *config.Config) *spectral.Field {
		return flows.TaylorGreen(cfg.M, cfg.P, cfg.FlowParams.Amplitude, cfg.FlowParams.Cells)
	}
	r.flows["vortex-pair"] = func(cfg *config.Config) *spectral.Field {
		return flows.VortexPair(cfg.M, cfg.P, cfg.FlowParams.Amplitude, cfg.FlowParams.Radius, cfg.FlowParams.Separation)
	}
	r.flows["shear-layer"] = func(cfg *config.Config) *spectral.Field {
		return flows.ShearLayer(cfg.M, cfg.P, cfg.FlowParams.Amplitude, cfg.FlowParams.Thickness, cfg.FlowParams.Perturbation)
	}
	r.flows["random"] = func(cfg *config.Config) *spectral.Field {
		return flows.Random(cfg.M, cfg.P, cfg.FlowParams.Amplitude, cfg.FlowParams.KMin, cfg.FlowParams.KMax, cfg.Seed)
	}

	r.steppers["ifrk4"] = func(tau float64, linear [][]float64, nonlinear integrators.NonlinearFunc) integrators.Stepper {
		return integrators.NewIFRK4(tau, linear, nonlinear)
	}
	r.steppers["ifeuler"] = func(tau float64, linear [][]float64, nonlinear integrators.NonlinearFunc) integrators.Stepper {
		return integrators.NewIFEuler(tau, linear, nonlinear)
	}

	return r
}

func (r *Registry) GetOperator(name string) (solver.Operator, error) {
	fn, ok := r.operators[name]
	if !ok {
		return nil, fmt.Errorf("unknown operator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetFlow(name string, cfg *config.Config) (*spectral.Field, error) {
	fn, ok := r.flows[name]
	if !ok {
		return nil, fmt.Errorf("unknown flow: %s", name)
	}
	return fn(cfg), nil
}

func (r *Registry) GetStepper(name string, tau float64, linear [][]float64, nonlinear integrators.NonlinearFunc) (integrators.Stepper, error) {
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown stepper: %s", name)
	}
	return fn(tau, linear, nonlinear), nil
}

func (r *Registry) ListOperators() []string {
	names := make([]string, 0, len(r.operators))
	for name := range r.operators {
		names = append(names, name)
	}
	return names
}

func (r *Registry) ListFlows() []string {
	names := make([]string, 0, len(r.flows))
	for name := range r.flows {
		names = append(names, name)
	}
	return names
}

func (r *Registry) ListSteppers() []string {
	names := make([]string, 0, len(r.steppers))
	for name := range r.steppers {
		names = append(names, name)
	}
	return names
}

func (r *Registry) DefaultMetrics() []metrics.Metric {
	return []metrics.Metric{
		metrics.NewDissipation(),
		metrics.NewPeak(),
		metrics.NewStability(DefaultStabilityThreshold),
	}
}
