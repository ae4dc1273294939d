package runner

import (
	"context"
	"sync"

	"github.com/shhawkins/three-body-simulator/internal/metrics"
	"github.com/shhawkins/three-body-simulator/internal/sim"
)

// Scenario is one independent sweep entry.
type Scenario struct {
	Name   string
	Bodies []sim.BodyConfig
	Opts   sim.Options
}

// Sweep runs several scenarios concurrently, one controller per goroutine,
// so the single-threaded core is never shared. Each run gets fresh drift
// and separation metrics. Results are index-aligned with scenarios; the
// first error wins.
func Sweep(ctx context.Context, scenarios []Scenario, ticks int, tickDelta float64) ([]*Result, error) {
	results := make([]*Result, len(scenarios))
	errs := make([]error, len(scenarios))

	var wg sync.WaitGroup
	for i, sc := range scenarios {
		wg.Add(1)
		go func(idx int, sc Scenario) {
			defer wg.Done()

			ctrl, err := sim.New(sc.Bodies, sc.Opts)
			if err != nil {
				errs[idx] = err
				return
			}

			r := New(ctrl)
			r.AddMetric(metrics.NewEnergyDrift(sc.Opts.G))
			r.AddMetric(metrics.NewMomentumDrift())
			r.AddMetric(metrics.NewMinSeparation())

			results[idx], errs[idx] = r.Run(ctx, ticks, tickDelta)
		}(i, sc)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
