// Package sweep runs scripted batches: YAML scenarios, parameter sweeps, and
// timestep refinement studies.
package sweep

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dsconnelly/whirly/internal/config"
	"github.com/dsconnelly/whirly/internal/experiment"
	"github.com/dsconnelly/whirly/internal/storage"
)

// Scenario defines a scripted sequence of simulation runs.
type Scenario struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Runs        []RunSpec `yaml:"runs"`
}

// RunSpec is a single run in a scenario. Zero-valued fields keep the preset
// or default value; Params entries override individual flow parameters.
type RunSpec struct {
	Name      string             `yaml:"name"`
	Preset    string             `yaml:"preset"`
	Flow      string             `yaml:"flow"`
	Operator  string             `yaml:"operator"`
	Tau       float64            `yaml:"tau"`
	M         int                `yaml:"m"`
	P         float64            `yaml:"p"`
	Re        float64            `yaml:"re"`
	T         float64            `yaml:"time"`
	OutputTau float64            `yaml:"output_tau"`
	Seed      int64              `yaml:"seed"`
	Params    map[string]float64 `yaml:"params"`
}

// Outcome summarizes one completed scenario run.
type Outcome struct {
	Name    string
	RunID   string
	Metrics map[string]float64
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// Config resolves the run spec into a full configuration, starting from the
// named preset (or the defaults) and layering the run's overrides on top.
func (r RunSpec) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if r.Preset != "" {
		flow, variant, ok := strings.Cut(r.Preset, "/")
		if !ok {
			return nil, fmt.Errorf("preset %q is not of the form flow/variant", r.Preset)
		}
		preset := config.GetPreset(flow, variant)
		if preset == nil {
			return nil, fmt.Errorf("unknown preset: %s", r.Preset)
		}
		cfg = preset.Clone()
	}

	if r.Flow != "" {
		cfg.Flow = r.Flow
	}
	if r.Operator != "" {
		cfg.Operator = r.Operator
	}
	if r.Tau > 0 {
		cfg.Tau = r.Tau
	}
	if r.M > 0 {
		cfg.M = r.M
	}
	if r.P > 0 {
		cfg.P = r.P
	}
	if r.Re > 0 {
		cfg.Re = r.Re
	}
	if r.T > 0 {
		cfg.T = r.T
	}
	if r.OutputTau > 0 {
		cfg.OutputTau = r.OutputTau
	}
	if r.Seed != 0 {
		cfg.Seed = r.Seed
	}

	for name, value := range r.Params {
		if err := applyParam(cfg, name, value); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (r RunSpec) label() string {
	if r.Name != "" {
		return r.Name
	}
	if r.Flow != "" {
		return r.Flow
	}
	return r.Preset
}

// RunScenario executes all runs in a scenario, saving each to the store when
// one is given. It returns the outcomes completed so far alongside any error.
func RunScenario(ctx context.Context, scenario *Scenario, reg *experiment.Registry, st *storage.Store) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(scenario.Runs))

	for i, spec := range scenario.Runs {
		fmt.Printf("Running %d/%d: %s\n", i+1, len(scenario.Runs), spec.label())

		cfg, err := spec.Config()
		if err != nil {
			return outcomes, fmt.Errorf("run %d: %w", i+1, err)
		}

		exp, err := experiment.New(cfg, reg)
		if err != nil {
			return outcomes, fmt.Errorf("run %d: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return outcomes, fmt.Errorf("run %d: %w", i+1, err)
		}

		outcome := Outcome{Name: spec.label(), Metrics: result.Metrics}
		if st != nil {
			runID, err := st.Save(cfg, result)
			if err != nil {
				return outcomes, fmt.Errorf("run %d save: %w", i+1, err)
			}
			outcome.RunID = runID
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func applyParam(cfg *config.Config, name string, value float64) error {
	switch name {
	case "tau":
		cfg.Tau = value
	case "re":
		cfg.Re = value
	case "time":
		cfg.T = value
	case "output_tau":
		cfg.OutputTau = value
	case "amplitude":
		cfg.FlowParams.Amplitude = value
	case "cells":
		cfg.FlowParams.Cells = int(value)
	case "radius":
		cfg.FlowParams.Radius = value
	case "separation":
		cfg.FlowParams.Separation = value
	case "thickness":
		cfg.FlowParams.Thickness = value
	case "perturbation":
		cfg.FlowParams.Perturbation = value
	case "kmin":
		cfg.FlowParams.KMin = int(value)
	case "kmax":
		cfg.FlowParams.KMax = int(value)
	default:
		return fmt.Errorf("unknown parameter: %s", name)
	}
	return nil
}
