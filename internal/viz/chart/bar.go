package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	barLabelGap = 0.02
	barHeadroom = 0.1
	// barAspect is how much longer one score unit is drawn than one bar slot.
	barAspect = 7
)

// DrawBar draws one bar per group with its value printed above it. The data
// area keeps a fixed aspect ratio inside the canvas.
func (r *Renderer) DrawBar(groups []string, values []float64, metric, path string) error {
	if err := checkLengths("bar", len(groups), len(values)); err != nil {
		return err
	}

	bars, err := plotter.NewBarChart(plotter.Values(values), barWidth)
	if err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = barFillColor
	bars.LineStyle.Color = barEdgeColor
	bars.LineStyle.Width = vg.Points(1)

	xy := plotter.XYLabels{}
	lo, hi := 0.0, 0.0
	for i, v := range values {
		xy.XYs = append(xy.XYs, plotter.XY{X: float64(i), Y: v + barLabelGap})
		xy.Labels = append(xy.Labels, valueLabel(v))
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	labels, err := plotter.NewLabels(xy)
	if err != nil {
		return fmt.Errorf("bar labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
	}

	p := plot.New()
	p.Title.Text = metric
	p.X.Label.Text = "Chunking Method"
	p.Y.Label.Text = "Score"
	p.Add(bars, labels)

	p.Y.Min = lo
	p.Y.Max = hi + barHeadroom

	p.NominalX(groups...)
	rotateTickLabels(&p.X)

	return r.saveWithAspect(p, r.opts.Bar, barAspect, path)
}
