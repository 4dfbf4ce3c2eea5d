package report

import (
	"fmt"

	"github.com/DjordjeVuckovic/chunkviz/internal/viz/aggregate"
)

// Generate builds a report from a filled collection. Methods keep collection
// order and metrics keep configured order.
func Generate(c *aggregate.Collection, meta Meta) (*Report, error) {
	metrics := c.Metrics()
	methods := c.Methods()

	r := &Report{
		Meta:    meta,
		Metrics: metrics,
		Methods: make([]MethodEntry, len(methods)),
	}
	for i, m := range methods {
		r.Methods[i] = MethodEntry{
			Method: m,
			Means:  make(map[string]float64, len(metrics)),
			Scores: make(map[string]float64, len(metrics)),
			Spread: make(map[string]Spread, len(metrics)),
		}
		normalized := c.Normalized(m)
		for j, metric := range metrics {
			if j < len(normalized) {
				r.Methods[i].Scores[metric] = normalized[j]
			}
		}
	}

	for _, metric := range metrics {
		lists, err := c.Scores(metric)
		if err != nil {
			return nil, err
		}
		means, err := c.Means(metric)
		if err != nil {
			return nil, fmt.Errorf("aggregate %s: %w", metric, err)
		}
		for i := range methods {
			r.Methods[i].Means[metric] = means[i]
			r.Methods[i].Spread[metric] = ComputeSpread(lists[i])
		}
	}

	return r, nil
}
