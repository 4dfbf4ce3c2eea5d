// Package aggregate groups per-question scores of many result records by
// metric and chunking method.
package aggregate

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/chunkviz/internal/viz/record"
	"gonum.org/v1/gonum/stat"
)

var ErrEmptyScores = errors.New("no per-question scores")

// Collection holds scores keyed by metric then escaped method. Methods keep the
// order in which they were first added; re-adding a method replaces its scores.
type Collection struct {
	metrics    []string
	methods    []string
	seen       map[string]bool
	scores     map[string]map[string][]float64 // [metric][method]
	normalized map[string][]float64            // [method]
}

func NewCollection(metrics []string) *Collection {
	c := &Collection{
		metrics:    append([]string(nil), metrics...),
		seen:       make(map[string]bool),
		scores:     make(map[string]map[string][]float64, len(metrics)),
		normalized: make(map[string][]float64),
	}
	for _, m := range metrics {
		c.scores[m] = make(map[string][]float64)
	}
	return c
}

// Add stores the per-question lists and the normalized scalars of rec.
func (c *Collection) Add(rec *record.Record) error {
	method := rec.Method()

	normalized, err := rec.Normalized(c.metrics)
	if err != nil {
		return err
	}

	lists := make(map[string][]float64, len(c.metrics))
	for _, m := range c.metrics {
		qs, ok := rec.Questions(m)
		if !ok {
			return fmt.Errorf("record %q has no per-question scores for metric %q", rec.Source, m)
		}
		lists[m] = append([]float64(nil), qs...)
	}

	if !c.seen[method] {
		c.seen[method] = true
		c.methods = append(c.methods, method)
	}
	for m, qs := range lists {
		c.scores[m][method] = qs
	}
	c.normalized[method] = normalized
	return nil
}

func (c *Collection) Has(method string) bool {
	return c.seen[method]
}

func (c *Collection) Len() int {
	return len(c.methods)
}

// Methods returns the distinct escaped methods in first-seen order.
func (c *Collection) Methods() []string {
	return append([]string(nil), c.methods...)
}

func (c *Collection) Metrics() []string {
	return append([]string(nil), c.metrics...)
}

// Scores returns one per-question list per method, in method order.
func (c *Collection) Scores(metric string) ([][]float64, error) {
	byMethod, ok := c.scores[metric]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q", metric)
	}
	out := make([][]float64, 0, len(c.methods))
	for _, method := range c.methods {
		out = append(out, byMethod[method])
	}
	return out, nil
}

// Means returns the arithmetic mean of each method's per-question list.
func (c *Collection) Means(metric string) ([]float64, error) {
	lists, err := c.Scores(metric)
	if err != nil {
		return nil, err
	}
	means := make([]float64, len(lists))
	for i, qs := range lists {
		v, err := Mean(qs)
		if err != nil {
			return nil, fmt.Errorf("metric %q method %q: %w", metric, c.methods[i], err)
		}
		means[i] = v
	}
	return means, nil
}

// Normalized returns the record-level scores of method divided by 100.
func (c *Collection) Normalized(method string) []float64 {
	return c.normalized[method]
}

func Mean(scores []float64) (float64, error) {
	if len(scores) == 0 {
		return 0, ErrEmptyScores
	}
	return stat.Mean(scores, nil), nil
}
