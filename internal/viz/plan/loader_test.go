package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/chunkviz/internal/apperr"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/record"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/visualizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid plan", func(t *testing.T) {
		yaml := `
inputs: ["results/**/*.json", results/extra.json]
result_dir: out
metrics: [hit_rate, mrr]
on_error: skip
workers: 4
context:
  filename: fubon
  embedding_model: text-embedding-3-small
  k_value: 3
  threshold: 1.0
charts:
  format: svg
`
		p, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, []string{"results/**/*.json", "results/extra.json"}, p.Inputs)
		assert.Equal(t, "out", p.ResultDir)
		assert.Equal(t, []string{"hit_rate", "mrr"}, p.Metrics)
		assert.Equal(t, visualizer.Skip, p.OnError)
		assert.Equal(t, 4, p.Workers)
		assert.Equal(t, record.Context{
			Filename:       "fubon",
			EmbeddingModel: "text-embedding-3-small",
			KValue:         "3",
			Threshold:      "1.0",
		}, p.Context)
		assert.Equal(t, "svg", p.Charts.Format)
	})

	t.Run("defaults applied", func(t *testing.T) {
		p, err := Parse([]byte(`inputs: [a.json]`))
		require.NoError(t, err)
		assert.Equal(t, record.DefaultMetrics, p.Metrics)
		assert.Equal(t, visualizer.Abort, p.OnError)
		assert.Empty(t, p.ResultDir)
		assert.Zero(t, p.Workers)
		assert.Empty(t, p.Charts.Format)
		assert.True(t, p.Context.IsZero())
	})

	errorCases := []struct {
		name string
		yaml string
		want string
	}{
		{"no inputs", `inputs: []`, "no inputs"},
		{"blank input", `inputs: [" "]`, "input at index 0 is empty"},
		{"blank metric", "inputs: [a.json]\nmetrics: [hit_rate, \"\"]", "metric at index 1 has no name"},
		{"duplicate metric", "inputs: [a.json]\nmetrics: [mrr, mrr]", `metric "mrr" listed twice`},
		{"bad policy", "inputs: [a.json]\non_error: retry", `invalid on_error "retry"`},
		{"negative workers", "inputs: [a.json]\nworkers: -2", "workers must be at least 1"},
		{"partial context", "inputs: [a.json]\ncontext:\n  filename: fubon", "context is missing embedding_model, k_value, threshold"},
		{"bad format", "inputs: [a.json]\ncharts:\n  format: gif", `unsupported chart format "gif"`},
		{"bad yaml", "inputs: [", "parse plan YAML"},
	}
	t.Run("no inputs is a validation error", func(t *testing.T) {
		_, err := Parse([]byte(`result_dir: out`))
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "plan has no inputs", ve.Message)
	})

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inputs: [a.json]\nworkers: 2\n"), 0644))

	p, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Workers)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read plan file")
}

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(root, filepath.FromSlash(n))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("{}"), 0644))
	}
}

func TestExpandInputs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a/by_page.json", "a/semantic.json", "b/deep/by_markdown.json", "b/notes.txt")

	t.Run("globs and plain paths keep order without repeats", func(t *testing.T) {
		got, err := ExpandInputs([]string{
			filepath.Join(root, "a", "semantic.json"),
			filepath.Join(root, "**", "*.json"),
			filepath.Join(root, "a", "..", "a", "semantic.json"),
		})
		require.NoError(t, err)

		require.Len(t, got, 3)
		assert.Equal(t, filepath.Join(root, "a", "semantic.json"), got[0])
		assert.ElementsMatch(t, []string{
			filepath.Join(root, "a", "semantic.json"),
			filepath.Join(root, "a", "by_page.json"),
			filepath.Join(root, "b", "deep", "by_markdown.json"),
		}, got)
	})

	t.Run("missing plain path is kept", func(t *testing.T) {
		missing := filepath.Join(root, "missing.json")
		got, err := ExpandInputs([]string{missing})
		require.NoError(t, err)
		assert.Equal(t, []string{missing}, got)
	})

	t.Run("glob without matches", func(t *testing.T) {
		_, err := ExpandInputs([]string{filepath.Join(root, "*.yaml")})
		assert.ErrorContains(t, err, "matched no files")
	})
}
