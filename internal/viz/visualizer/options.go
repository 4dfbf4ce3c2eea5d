package visualizer

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/chunkviz/internal/viz/chart"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/record"
)

// ErrorPolicy decides what happens to a result file that cannot be used.
type ErrorPolicy string

const (
	// Abort stops the run at the first bad file.
	Abort ErrorPolicy = "abort"
	// Skip logs the bad file and continues without it.
	Skip ErrorPolicy = "skip"
)

func (p ErrorPolicy) Valid() bool {
	return p == Abort || p == Skip
}

func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	p := ErrorPolicy(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return Abort, nil
	}
	if !p.Valid() {
		return "", fmt.Errorf("invalid error policy %q (want abort or skip)", s)
	}
	return p, nil
}

// ChartDrawer renders the three chart kinds. Paths passed in are
// extensionless; Path reports the file actually written for a base path.
type ChartDrawer interface {
	DrawRadar(metrics []string, scores []float64, label, path string) error
	DrawBox(groups []string, lists [][]float64, metric, path string) error
	DrawBar(groups []string, values []float64, metric, path string) error
	Path(base string) string
}

type Options struct {
	// Metrics defaults to record.DefaultMetrics.
	Metrics []string
	// Context, when set, names the output subtree instead of the records.
	Context record.Context
	OnError ErrorPolicy
	// Workers bounds concurrent radar renders. Zero means one.
	Workers int
	// Drawer defaults to a chart.Renderer built from Charts.
	Drawer   ChartDrawer
	Charts   chart.Options
	Progress ProgressReporter
}

func (o Options) withDefaults() (Options, error) {
	if len(o.Metrics) == 0 {
		o.Metrics = append([]string(nil), record.DefaultMetrics...)
	}
	if o.OnError == "" {
		o.OnError = Abort
	}
	if !o.OnError.Valid() {
		return o, fmt.Errorf("invalid error policy %q", o.OnError)
	}
	if err := o.Context.Validate(); err != nil {
		return o, err
	}
	if o.Workers < 0 {
		return o, fmt.Errorf("workers must be at least 1, got %d", o.Workers)
	}
	if o.Workers == 0 {
		o.Workers = 1
	}
	if o.Drawer == nil {
		r, err := chart.NewRenderer(o.Charts)
		if err != nil {
			return o, err
		}
		o.Drawer = r
	}
	if o.Progress == nil {
		o.Progress = NoProgress{}
	}
	return o, nil
}
