package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsconnelly/whirly/internal/config"
	"github.com/dsconnelly/whirly/internal/experiment"
	"github.com/dsconnelly/whirly/internal/spectral"
)

func sampleConfig(m int) *config.Config {
	cfg := config.DefaultConfig()
	cfg.M = m
	cfg.Tau = 0.25
	cfg.T = 0.5
	cfg.OutputTau = 0.25
	return cfg
}

func sampleResult(m int) *experiment.Result {
	q0 := spectral.FromFunc(m, 2*math.Pi, func(x, y float64) float64 {
		return math.Sin(x) * math.Sin(y)
	})
	q1 := q0.Scale(complex(0.5, 0))

	return &experiment.Result{
		Fields: []*spectral.Field{q0, q1},
		Times:  []float64{0, 0.5},
		Series: experiment.Series{
			Energy:    []float64{0.25, 0.0625},
			Enstrophy: []float64{0.5, 0.125},
			Peak:      []float64{1.0, 0.5},
		},
		Metrics: map[string]float64{
			"dissipation": 0.375,
			"stability":   1.0,
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cfg := sampleConfig(8)
	runID, err := st.Save(cfg, sampleResult(8))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasPrefix(runID, cfg.Flow+"_") {
		t.Errorf("runID = %q, want prefix %q", runID, cfg.Flow+"_")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if meta.ID != runID {
		t.Errorf("ID = %q, want %q", meta.ID, runID)
	}
	if meta.Flow != cfg.Flow || meta.Operator != cfg.Operator {
		t.Errorf("got flow %q operator %q, want %q %q", meta.Flow, meta.Operator, cfg.Flow, cfg.Operator)
	}
	if meta.M != 8 || meta.Duration != 0.5 || meta.Snapshots != 2 {
		t.Errorf("got m=%d duration=%v snapshots=%d", meta.M, meta.Duration, meta.Snapshots)
	}
	if v := meta.Metrics["dissipation"]; v != 0.375 {
		t.Errorf("dissipation metric = %v, want 0.375", v)
	}
}

func TestStoreFileStructure(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	runID, err := st.Save(sampleConfig(8), sampleResult(8))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	for _, name := range []string{
		"metadata.json",
		"series.csv",
		filepath.Join("fields", "0000.csv"),
		filepath.Join("fields", "0001.csv"),
	} {
		path := filepath.Join(dir, runID, name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty store, got %d runs", len(runs))
	}

	for i := 0; i < 2; i++ {
		if _, err := st.Save(sampleConfig(8), sampleResult(8)); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "never-created"))

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty list, got %d runs", len(runs))
	}
}

func TestLoadSeriesRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	result := sampleResult(8)
	runID, err := st.Save(sampleConfig(8), result)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	times, series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("LoadSeries failed: %v", err)
	}
	if len(times) != 2 || len(series.Energy) != 2 || len(series.Enstrophy) != 2 || len(series.Peak) != 2 {
		t.Fatalf("got %d times, series lengths %d/%d/%d, want 2 each",
			len(times), len(series.Energy), len(series.Enstrophy), len(series.Peak))
	}

	for i := range times {
		if math.Abs(times[i]-result.Times[i]) > 1e-6 {
			t.Errorf("times[%d] = %v, want %v", i, times[i], result.Times[i])
		}
		if math.Abs(series.Energy[i]-result.Series.Energy[i]) > 1e-6 {
			t.Errorf("energy[%d] = %v, want %v", i, series.Energy[i], result.Series.Energy[i])
		}
		if math.Abs(series.Peak[i]-result.Series.Peak[i]) > 1e-6 {
			t.Errorf("peak[%d] = %v, want %v", i, series.Peak[i], result.Series.Peak[i])
		}
	}
}

func TestLoadFieldRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	result := sampleResult(8)
	runID, err := st.Save(sampleConfig(8), result)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	samples, err := st.LoadField(runID, 0)
	if err != nil {
		t.Fatalf("LoadField failed: %v", err)
	}
	if len(samples) != 8 {
		t.Fatalf("expected 8 rows, got %d", len(samples))
	}

	want := result.Fields[0].Real()
	for i := range samples {
		if len(samples[i]) != 8 {
			t.Fatalf("row %d has %d columns, want 8", i, len(samples[i]))
		}
		for j := range samples[i] {
			if math.Abs(samples[i][j]-want[i][j]) > 1e-6 {
				t.Errorf("samples[%d][%d] = %v, want %v", i, j, samples[i][j], want[i][j])
			}
		}
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if _, err := st.Load("no-such-run"); err == nil {
		t.Error("expected error loading missing run")
	}
	if _, _, err := st.LoadSeries("no-such-run"); err == nil {
		t.Error("expected error loading missing series")
	}
	if _, err := st.LoadField("no-such-run", 0); err == nil {
		t.Error("expected error loading missing field")
	}
}

func TestExportJSON(t *testing.T) {
	meta := &RunMetadata{
		ID:        "taylor-green_123",
		Flow:      "taylor-green",
		Operator:  "navier-stokes",
		Tau:       0.25,
		M:         8,
		Re:        1000,
		Duration:  0.5,
		Snapshots: 2,
		Metrics:   map[string]float64{"peak": 1.0},
	}
	result := sampleResult(8)

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, result.Times, result.Series); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if data.ID != meta.ID || data.Flow != meta.Flow {
		t.Errorf("got id %q flow %q, want %q %q", data.ID, data.Flow, meta.ID, meta.Flow)
	}
	if len(data.Times) != 2 || len(data.Energy) != 2 {
		t.Errorf("got %d times and %d energies, want 2 each", len(data.Times), len(data.Energy))
	}
	if data.Metrics["peak"] != 1.0 {
		t.Errorf("peak metric = %v, want 1.0", data.Metrics["peak"])
	}
}

func TestExportCSV(t *testing.T) {
	result := sampleResult(8)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, result.Times, result.Series); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "time,energy,enstrophy,peak" {
		t.Errorf("header = %q", lines[0])
	}
}
