package sweep

import (
	"context"
	"fmt"

	"github.com/dsconnelly/whirly/internal/config"
	"github.com/dsconnelly/whirly/internal/experiment"
)

// ParameterSweep varies one configuration parameter across a range while
// holding the rest of the base configuration fixed.
type ParameterSweep struct {
	Param string
	Min   float64
	Max   float64
	Steps int
}

// SweepPoint records the outcome for one parameter value.
type SweepPoint struct {
	Value          float64
	FinalEnergy    float64
	FinalEnstrophy float64
	Metrics        map[string]float64
}

// RunSweep executes the sweep against the base configuration. It returns the
// points completed so far alongside any error.
func RunSweep(ctx context.Context, base *config.Config, sw *ParameterSweep, reg *experiment.Registry) ([]SweepPoint, error) {
	if sw.Steps < 2 {
		return nil, fmt.Errorf("sweep needs at least two steps, got %d", sw.Steps)
	}

	points := make([]SweepPoint, 0, sw.Steps)
	delta := (sw.Max - sw.Min) / float64(sw.Steps-1)

	for i := 0; i < sw.Steps; i++ {
		value := sw.Min + float64(i)*delta

		cfg := base.Clone()
		if err := applyParam(cfg, sw.Param, value); err != nil {
			return nil, err
		}

		exp, err := experiment.New(cfg, reg)
		if err != nil {
			return points, fmt.Errorf("sweep point %s=%.4f: %w", sw.Param, value, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return points, fmt.Errorf("sweep point %s=%.4f: %w", sw.Param, value, err)
		}

		last := len(result.Times) - 1
		points = append(points, SweepPoint{
			Value:          value,
			FinalEnergy:    result.Series.Energy[last],
			FinalEnstrophy: result.Series.Enstrophy[last],
			Metrics:        result.Metrics,
		})

		fmt.Printf("Sweep %d/%d: %s=%.4f\n", i+1, sw.Steps, sw.Param, value)
	}

	return points, nil
}
