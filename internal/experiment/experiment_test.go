package experiment

import (
	"context"
	"math"
	"testing"

	"github.com/dsconnelly/whirly/internal/config"
)

func quickConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Flow = "taylor-green"
	cfg.M = 16
	cfg.Tau = 0.01
	cfg.T = 0.05
	cfg.OutputTau = 0.01
	cfg.Re = 100
	cfg.FlowParams.Cells = 1
	return cfg
}

func TestRegistryLookups(t *testing.T) {
	reg := NewRegistry()

	for _, name := range []string{"navier-stokes", "sqg"} {
		if _, err := reg.GetOperator(name); err != nil {
			t.Errorf("GetOperator(%q): %v", name, err)
		}
	}
	if _, err := reg.GetOperator("bogus"); err == nil {
		t.Error("GetOperator accepted an unknown name")
	}

	cfg := quickConfig()
	for _, name := range []string{"taylor-green", "vortex-pair", "shear-layer", "random"} {
		q, err := reg.GetFlow(name, cfg)
		if err != nil {
			t.Errorf("GetFlow(%q): %v", name, err)
			continue
		}
		if q.M != cfg.M || q.P != cfg.P {
			t.Errorf("GetFlow(%q) returned a (%d, %g) field", name, q.M, q.P)
		}
	}
	if _, err := reg.GetFlow("bogus", cfg); err == nil {
		t.Error("GetFlow accepted an unknown name")
	}

	linear := [][]float64{{0}}
	for _, name := range []string{"ifrk4", "ifeuler"} {
		if _, err := reg.GetStepper(name, 0.01, linear, nil); err != nil {
			t.Errorf("GetStepper(%q): %v", name, err)
		}
	}
	if _, err := reg.GetStepper("bogus", 0.01, linear, nil); err == nil {
		t.Error("GetStepper accepted an unknown name")
	}

	if len(reg.ListFlows()) != 4 || len(reg.ListOperators()) != 2 || len(reg.ListSteppers()) != 2 {
		t.Error("registry listings are incomplete")
	}
}

func TestExperimentRun(t *testing.T) {
	cfg := quickConfig()
	exp, err := New(cfg, NewRegistry())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	const want = 6 // five steps recorded every step, plus the initial state
	if len(result.Fields) != want {
		t.Fatalf("got %d snapshots, want %d", len(result.Fields), want)
	}
	if len(result.Times) != want || len(result.Series.Energy) != want ||
		len(result.Series.Enstrophy) != want || len(result.Series.Peak) != want {
		t.Fatal("diagnostic series lengths disagree with snapshot count")
	}

	for idx, tm := range result.Times {
		if math.Abs(tm-0.01*float64(idx)) > 1e-12 {
			t.Errorf("Times[%d] = %g, want %g", idx, tm, 0.01*float64(idx))
		}
	}

	for _, name := range []string{"dissipation", "peak", "stability"} {
		if _, ok := result.Metrics[name]; !ok {
			t.Errorf("metric %q missing from result", name)
		}
	}
	if result.Metrics["stability"] != 1.0 {
		t.Errorf("stability = %g, want 1.0 for a calm run", result.Metrics["stability"])
	}
	if result.Metrics["dissipation"] <= 0 {
		t.Errorf("dissipation = %g, want positive for a decaying flow", result.Metrics["dissipation"])
	}
}

func TestExperimentRejectsUnknownNames(t *testing.T) {
	reg := NewRegistry()

	cfg := quickConfig()
	cfg.Operator = "bogus"
	if _, err := New(cfg, reg); err == nil {
		t.Error("New accepted an unknown operator")
	}

	cfg = quickConfig()
	cfg.Flow = "bogus"
	if _, err := New(cfg, reg); err == nil {
		t.Error("New accepted an unknown flow")
	}
}

func TestEnsembleDistinctSeeds(t *testing.T) {
	cfg := quickConfig()
	cfg.Flow = "random"
	cfg.FlowParams.Amplitude = 3.0
	cfg.FlowParams.KMin = 2
	cfg.FlowParams.KMax = 6

	ens := NewEnsemble(cfg, NewRegistry(), 3, 5)
	results, err := ens.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	for i := 0; i < len(results); i++ {
		for j := i + 1; j < len(results); j++ {
			if results[i].Fields[0].Coeff[2][3] == results[j].Fields[0].Coeff[2][3] {
				t.Errorf("members %d and %d share an initial condition", i, j)
			}
		}
	}
}

func TestEnsemblePropagatesErrors(t *testing.T) {
	cfg := quickConfig()
	cfg.Flow = "bogus"

	if _, err := NewEnsemble(cfg, NewRegistry(), 2, 1).Run(context.Background()); err == nil {
		t.Error("ensemble swallowed a member error")
	}
}
