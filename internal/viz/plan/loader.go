package plan

import (
	"fmt"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/chunkviz/internal/apperr"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/chart"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/record"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/visualizer"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan YAML: %w", err)
	}
	if err := validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func validate(p *Plan) error {
	if len(p.Inputs) == 0 {
		return apperr.NewValidation("plan has no inputs")
	}
	for i, in := range p.Inputs {
		if strings.TrimSpace(in) == "" {
			return fmt.Errorf("input at index %d is empty", i)
		}
	}

	seen := make(map[string]bool, len(p.Metrics))
	for i, m := range p.Metrics {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("metric at index %d has no name", i)
		}
		if seen[m] {
			return fmt.Errorf("metric %q listed twice", m)
		}
		seen[m] = true
	}

	if p.OnError != "" && !p.OnError.Valid() {
		return fmt.Errorf("invalid on_error %q", p.OnError)
	}
	if p.Workers < 0 {
		return fmt.Errorf("workers must be at least 1, got %d", p.Workers)
	}
	if err := p.Context.Validate(); err != nil {
		return err
	}
	if p.Charts.Format != "" && !chart.IsSupportedFormat(p.Charts.Format) {
		return fmt.Errorf("unsupported chart format %q", p.Charts.Format)
	}

	if len(p.Metrics) == 0 {
		p.Metrics = append([]string(nil), record.DefaultMetrics...)
	}
	if p.OnError == "" {
		p.OnError = visualizer.Abort
	}
	return nil
}
