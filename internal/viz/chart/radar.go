package chart

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

const (
	radarStep        = 0.2
	radarLabelRadius = 1.12
	radarExtent      = 1.3
	valueInset       = 0.15
	circleSegments   = 120
)

// DrawRadar draws one closed polygon of scores in [0,1] over one axis per
// metric, starting at north and going counterclockwise.
func (r *Renderer) DrawRadar(metrics []string, scores []float64, label, path string) error {
	if err := checkLengths("radar", len(metrics), len(scores)); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = label + " Radar Graph"
	p.HideAxes()

	angles := radarAngles(len(metrics))

	if err := addRadarGrid(p, angles); err != nil {
		return fmt.Errorf("radar grid: %w", err)
	}
	if err := addRadarAxisLabels(p, metrics, angles); err != nil {
		return fmt.Errorf("radar axis labels: %w", err)
	}

	vertices := radarVertices(scores)

	poly, err := plotter.NewPolygon(vertices)
	if err != nil {
		return fmt.Errorf("radar polygon: %w", err)
	}
	poly.Color = radarFillColor
	poly.LineStyle.Color = radarLineColor
	poly.LineStyle.Width = radarLineWidth

	points, err := plotter.NewScatter(vertices[:len(scores)])
	if err != nil {
		return fmt.Errorf("radar points: %w", err)
	}
	points.GlyphStyle.Color = radarPointColor
	points.GlyphStyle.Radius = pointRadius
	points.GlyphStyle.Shape = draw.CircleGlyph{}

	values, err := radarValueLabels(scores, angles)
	if err != nil {
		return fmt.Errorf("radar value labels: %w", err)
	}

	p.Add(poly, points, values)

	p.X.Min, p.X.Max = -radarExtent, radarExtent
	p.Y.Min, p.Y.Max = -radarExtent, radarExtent

	return r.save(p, r.opts.Radar, path)
}

func radarAngles(n int) []float64 {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = 2 * math.Pi * float64(i) / float64(n)
	}
	return angles
}

// radarPoint maps a polar position with angle zero at north to the plane.
func radarPoint(angle, radius float64) plotter.XY {
	return plotter.XY{X: -radius * math.Sin(angle), Y: radius * math.Cos(angle)}
}

// radarVertices returns one vertex per score plus the first vertex repeated,
// closing the polygon.
func radarVertices(scores []float64) plotter.XYs {
	angles := radarAngles(len(scores))
	xys := make(plotter.XYs, 0, len(scores)+1)
	for i, s := range scores {
		xys = append(xys, radarPoint(angles[i], s))
	}
	if len(xys) > 0 {
		xys = append(xys, xys[0])
	}
	return xys
}

func radarRings() []float64 {
	var rings []float64
	for i := 1; float64(i)*radarStep <= 1+1e-9; i++ {
		rings = append(rings, float64(i)*radarStep)
	}
	return rings
}

func addRadarGrid(p *plot.Plot, angles []float64) error {
	for _, ring := range radarRings() {
		circle := make(plotter.XYs, circleSegments+1)
		for i := range circle {
			circle[i] = radarPoint(2*math.Pi*float64(i)/circleSegments, ring)
		}
		l, err := plotter.NewLine(circle)
		if err != nil {
			return err
		}
		l.LineStyle.Color = gridColor
		l.LineStyle.Width = gridLineWidth
		p.Add(l)
	}

	for _, a := range angles {
		spoke, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, radarPoint(a, 1)})
		if err != nil {
			return err
		}
		spoke.LineStyle.Color = gridColor
		spoke.LineStyle.Width = gridLineWidth
		p.Add(spoke)
	}

	ticks := plotter.XYLabels{}
	for i := 0; float64(i)*radarStep <= 1+1e-9; i++ {
		v := float64(i) * radarStep
		ticks.XYs = append(ticks.XYs, radarPoint(math.Pi/8, v))
		ticks.Labels = append(ticks.Labels, strconv.FormatFloat(v, 'f', 1, 64))
	}
	tl, err := plotter.NewLabels(ticks)
	if err != nil {
		return err
	}
	p.Add(tl)
	return nil
}

func addRadarAxisLabels(p *plot.Plot, metrics []string, angles []float64) error {
	xy := plotter.XYLabels{Labels: metrics}
	for _, a := range angles {
		xy.XYs = append(xy.XYs, radarPoint(a, radarLabelRadius))
	}
	labels, err := plotter.NewLabels(xy)
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(labels)
	return nil
}

func radarValueLabels(scores, angles []float64) (*plotter.Labels, error) {
	xy := plotter.XYLabels{}
	for i, s := range scores {
		xy.XYs = append(xy.XYs, radarPoint(angles[i], math.Max(s-valueInset, 0)))
		xy.Labels = append(xy.Labels, valueLabel(s))
	}
	labels, err := plotter.NewLabels(xy)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = radarTextColor
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	return labels, nil
}
