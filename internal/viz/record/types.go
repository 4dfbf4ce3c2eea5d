// Package record parses the per-method evaluation result files produced by
// the retrieval benchmark.
package record

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultMetrics is the metric set rendered when none is configured.
var DefaultMetrics = []string{"hit_rate", "map", "mrr", "ndcg", "tnr"}

const (
	KeyFilename       = "search_filename"
	KeyChunkingMethod = "search_chunking_method"
	KeyEmbeddingModel = "search_embedding_model"
	KeyKValue         = "k_value"
	KeyThreshold      = "threshold"

	listSuffix = "_list"
)

// ListKey returns the key holding the per-question scores of metric.
func ListKey(metric string) string {
	return metric + listSuffix
}

// Record is one evaluation run of a single chunking method.
// Scores are on the 0-100 scale; PerQuestion lists are already fractions.
type Record struct {
	Source         string
	Filename       string
	ChunkingMethod string
	EmbeddingModel string
	KValue         string
	Threshold      string
	Scores         map[string]float64
	PerQuestion    map[string][]float64
}

// Context identifies the output subtree shared by comparable runs.
type Context struct {
	Filename       string `json:"filename" yaml:"filename"`
	EmbeddingModel string `json:"embedding_model" yaml:"embedding_model"`
	KValue         string `json:"k_value" yaml:"k_value"`
	Threshold      string `json:"threshold" yaml:"threshold"`
}

func (c Context) IsZero() bool {
	return c == Context{}
}

// Validate accepts a zero context or one with every field set.
func (c Context) Validate() error {
	if c.IsZero() {
		return nil
	}
	var missing []string
	if c.Filename == "" {
		missing = append(missing, "filename")
	}
	if c.EmbeddingModel == "" {
		missing = append(missing, "embedding_model")
	}
	if c.KValue == "" {
		missing = append(missing, "k_value")
	}
	if c.Threshold == "" {
		missing = append(missing, "threshold")
	}
	if len(missing) > 0 {
		return fmt.Errorf("context is missing %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c Context) String() string {
	return fmt.Sprintf("%s/%s/k=%s&threshold=%s", c.Filename, c.EmbeddingModel, c.KValue, c.Threshold)
}

// Context returns the output context of the record, using the stem of the
// searched file name.
func (r *Record) Context() Context {
	return Context{
		Filename:       FileStem(r.Filename),
		EmbeddingModel: r.EmbeddingModel,
		KValue:         r.KValue,
		Threshold:      r.Threshold,
	}
}

// Method returns the chunking method escaped for use as a path segment.
func (r *Record) Method() string {
	return EscapeMethod(r.ChunkingMethod)
}

// Normalized returns the scalar of each metric divided by 100, in metric order.
func (r *Record) Normalized(metrics []string) ([]float64, error) {
	out := make([]float64, 0, len(metrics))
	for _, m := range metrics {
		v, ok := r.Scores[m]
		if !ok {
			return nil, fmt.Errorf("record %q has no score for metric %q", r.Source, m)
		}
		out = append(out, v/100)
	}
	return out, nil
}

// Questions returns the per-question scores of metric.
func (r *Record) Questions(metric string) ([]float64, bool) {
	v, ok := r.PerQuestion[metric]
	return v, ok
}

// FileStem strips the directory and the last extension from p.
// Leading dots are not treated as an extension separator.
func FileStem(p string) string {
	base := filepath.Base(p)
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return base[:len(base)-len(ext)]
}
