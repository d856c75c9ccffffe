// Package storage persists simulation runs to disk and loads them back.
//
// Each run gets its own directory under the store root:
//
//	<base>/<runID>/metadata.json   run parameters and summary metrics
//	<base>/<runID>/series.csv      time, energy, enstrophy, peak per snapshot
//	<base>/<runID>/fields/NNNN.csv vorticity samples, one grid per snapshot
//
// Run IDs are "<flow>_<nanoseconds>" so repeated runs of the same flow sort
// chronologically and never collide.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dsconnelly/whirly/internal/config"
	"github.com/dsconnelly/whirly/internal/experiment"
)

// Store reads and writes runs under a base directory.
type Store struct {
	baseDir string
}

// New creates a store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init creates the base directory if it does not exist.
func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes a saved simulation run.
type RunMetadata struct {
	ID        string             `json:"id"`
	Flow      string             `json:"flow"`
	Operator  string             `json:"operator"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Tau       float64            `json:"tau"`
	M         int                `json:"m"`
	P         float64            `json:"p"`
	Re        float64            `json:"re"`
	Duration  float64            `json:"duration"`
	OutputTau float64            `json:"output_tau"`
	Snapshots int                `json:"snapshots"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a completed run to disk and returns its run ID.
func (s *Store) Save(cfg *config.Config, result *experiment.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", cfg.Flow, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	fieldsDir := filepath.Join(runDir, "fields")
	if err := os.MkdirAll(fieldsDir, 0755); err != nil {
		return "", fmt.Errorf("creating run directory: %w", err)
	}

	meta := RunMetadata{
		ID:        runID,
		Flow:      cfg.Flow,
		Operator:  cfg.Operator,
		Timestamp: time.Now(),
		Seed:      cfg.Seed,
		Tau:       cfg.Tau,
		M:         cfg.M,
		P:         cfg.P,
		Re:        cfg.Re,
		Duration:  cfg.T,
		OutputTau: cfg.OutputTau,
		Snapshots: len(result.Fields),
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", fmt.Errorf("creating metadata file: %w", err)
	}
	defer metaFile.Close()

	encoder := json.NewEncoder(metaFile)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(meta); err != nil {
		return "", fmt.Errorf("writing metadata: %w", err)
	}

	if err := s.writeSeries(runDir, result); err != nil {
		return "", err
	}

	for idx, q := range result.Fields {
		path := filepath.Join(fieldsDir, fmt.Sprintf("%04d.csv", idx))
		if err := writeGrid(path, q.Real()); err != nil {
			return "", fmt.Errorf("writing field %d: %w", idx, err)
		}
	}

	return runID, nil
}

func (s *Store) writeSeries(runDir string, result *experiment.Result) error {
	file, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return fmt.Errorf("creating series file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	header := []string{"time", "energy", "enstrophy", "peak"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing series header: %w", err)
	}

	for i := range result.Times {
		row := []string{
			formatFloat(result.Times[i]),
			formatFloat(result.Series.Energy[i]),
			formatFloat(result.Series.Enstrophy[i]),
			formatFloat(result.Series.Peak[i]),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing series row %d: %w", i, err)
		}
	}

	w.Flush()
	return w.Error()
}

func writeGrid(path string, samples [][]float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	row := make([]string, 0, len(samples))
	for _, line := range samples {
		row = row[:0]
		for _, v := range line {
			row = append(row, formatFloat(v))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// List returns metadata for all saved runs, skipping any directory whose
// metadata cannot be read.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, fmt.Errorf("reading store directory: %w", err)
	}

	var runs []RunMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

// Load reads the metadata for a single run.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("opening metadata for %s: %w", runID, err)
	}
	defer file.Close()

	var meta RunMetadata
	if err := json.NewDecoder(file).Decode(&meta); err != nil {
		return nil, fmt.Errorf("decoding metadata for %s: %w", runID, err)
	}

	return &meta, nil
}

// LoadSeries reads the diagnostic time series of a saved run.
func (s *Store) LoadSeries(runID string) ([]float64, experiment.Series, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, experiment.Series{}, fmt.Errorf("opening series for %s: %w", runID, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, experiment.Series{}, fmt.Errorf("reading series for %s: %w", runID, err)
	}

	var times []float64
	var series experiment.Series
	for i, record := range records {
		if i == 0 || len(record) < 4 {
			continue
		}
		values := make([]float64, 4)
		ok := true
		for j := range values {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			values[j] = v
		}
		if !ok {
			continue
		}
		times = append(times, values[0])
		series.Energy = append(series.Energy, values[1])
		series.Enstrophy = append(series.Enstrophy, values[2])
		series.Peak = append(series.Peak, values[3])
	}

	return times, series, nil
}

// LoadField reads one saved vorticity snapshot as grid samples.
func (s *Store) LoadField(runID string, index int) ([][]float64, error) {
	path := filepath.Join(s.baseDir, runID, "fields", fmt.Sprintf("%04d.csv", index))
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening field %d for %s: %w", index, runID, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading field %d for %s: %w", index, runID, err)
	}

	samples := make([][]float64, len(records))
	for i, record := range records {
		samples[i] = make([]float64, len(record))
		for j, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing field %d for %s: %w", index, runID, err)
			}
			samples[i][j] = v
		}
	}

	return samples, nil
}
