// Package plan reads YAML render plans.
package plan

import (
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/record"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/visualizer"
)

// Plan is a parsed render plan. ResultDir, Workers and Charts.Format stay
// zero when the file does not set them, so the environment value applies.
type Plan struct {
	Inputs    []string               `yaml:"inputs"`
	ResultDir string                 `yaml:"result_dir"`
	Metrics   []string               `yaml:"metrics"`
	OnError   visualizer.ErrorPolicy `yaml:"on_error"`
	Workers   int                    `yaml:"workers"`
	Context   record.Context         `yaml:"context"`
	Charts    ChartsConfig           `yaml:"charts"`
}

type ChartsConfig struct {
	Format string `yaml:"format"`
}
