package experiment

import (
	"context"
	"sync"

	"github.com/dsconnelly/whirly/internal/config"
)

// Ensemble runs seed-varied copies of a base configuration concurrently.
// Member idx runs with seed seedStart + idx, so random flows decorrelate
// while everything else stays fixed.
type Ensemble struct {
	base      *config.Config
	registry  *Registry
	numRuns   int
	seedStart int64
}

func NewEnsemble(base *config.Config, reg *Registry, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{base: base, registry: reg, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfg := e.base.Clone()
			cfg.Seed = e.seedStart + int64(idx)

			exp, err := New(cfg, e.registry)
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = exp.Run(ctx)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
