package optim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/mazegen/internal/experiment"
)

// Summary aggregates one metric across every seed tried.
type Summary struct {
	Min, Max, Mean float64
}

// SearchResult reports the best seed for the target metric and per-metric
// summaries over the whole range.
type SearchResult struct {
	BestSeed  int64
	BestValue float64
	Runs      int
	Summaries map[string]Summary
}

// SeedSearch generates one maze per seed in [From, From+Count) and keeps
// the seed that maximizes (or minimizes) a metric. Runs are sequential.
type SeedSearch struct {
	Rows, Cols int
	From       int64
	Count      int
	Minimize   bool
}

func (s *SeedSearch) Search(ctx context.Context, reg *experiment.Registry, metricName string) (*SearchResult, error) {
	if s.Count <= 0 {
		return nil, fmt.Errorf("seed count must be positive, got %d", s.Count)
	}

	best := math.Inf(-1)
	if s.Minimize {
		best = math.Inf(1)
	}
	res := &SearchResult{Summaries: make(map[string]Summary)}
	sums := make(map[string]float64)

	for i := 0; i < s.Count; i++ {
		seed := s.From + int64(i)
		exp := experiment.New(experiment.Config{Rows: s.Rows, Cols: s.Cols, Seed: seed, Source: "seeded"})
		if err := exp.Setup(reg); err != nil {
			return nil, err
		}
		result, err := exp.Run(ctx)
		if err != nil {
			return nil, err
		}

		val, ok := result.Metrics[metricName]
		if !ok {
			return nil, fmt.Errorf("unknown metric: %s (available: %v)", metricName, exp.MetricNames())
		}
		if (s.Minimize && val < best) || (!s.Minimize && val > best) {
			best = val
			res.BestSeed = seed
		}

		for name, v := range result.Metrics {
			sum, seen := res.Summaries[name]
			if !seen {
				sum = Summary{Min: v, Max: v}
			}
			sum.Min = math.Min(sum.Min, v)
			sum.Max = math.Max(sum.Max, v)
			res.Summaries[name] = sum
			sums[name] += v
		}
		res.Runs++
	}

	for name, sum := range res.Summaries {
		sum.Mean = sums[name] / float64(res.Runs)
		res.Summaries[name] = sum
	}
	res.BestValue = best
	return res, nil
}
