package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/dsconnelly/whirly/internal/experiment"
)

// ExportData is the JSON export shape for a saved run.
type ExportData struct {
	ID        string             `json:"id"`
	Flow      string             `json:"flow"`
	Operator  string             `json:"operator"`
	Tau       float64            `json:"tau"`
	M         int                `json:"m"`
	P         float64            `json:"p"`
	Re        float64            `json:"re"`
	Duration  float64            `json:"duration"`
	Snapshots int                `json:"snapshots"`
	Times     []float64          `json:"times"`
	Energy    []float64          `json:"energy"`
	Enstrophy []float64          `json:"enstrophy"`
	Peak      []float64          `json:"peak"`
	Metrics   map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run and its diagnostic series as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, times []float64, series experiment.Series) error {
	data := ExportData{
		ID:        meta.ID,
		Flow:      meta.Flow,
		Operator:  meta.Operator,
		Tau:       meta.Tau,
		M:         meta.M,
		P:         meta.P,
		Re:        meta.Re,
		Duration:  meta.Duration,
		Snapshots: meta.Snapshots,
		Times:     times,
		Energy:    series.Energy,
		Enstrophy: series.Enstrophy,
		Peak:      series.Peak,
		Metrics:   meta.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV writes the diagnostic series as CSV with a header row.
func ExportCSV(w io.Writer, times []float64, series experiment.Series) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"time", "energy", "enstrophy", "peak"}); err != nil {
		return err
	}

	for i := range times {
		row := []string{
			formatFloat(times[i]),
			formatFloat(series.Energy[i]),
			formatFloat(series.Enstrophy[i]),
			formatFloat(series.Peak[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
