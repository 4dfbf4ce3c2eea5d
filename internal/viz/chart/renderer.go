// Package chart draws radar, box and bar charts of evaluation scores.
//
// Every draw call builds, saves and drops its own plot, so a Renderer holds no
// figure state and may be used from several goroutines.
package chart

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var ErrLengthMismatch = errors.New("label and value counts differ")

type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) (*Renderer, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Renderer{opts: opts}, nil
}

// Format returns the image format the renderer writes.
func (r *Renderer) Format() string {
	return r.opts.Format
}

// Path returns the file a chart drawn to base is written to.
func (r *Renderer) Path(base string) string {
	return base + "." + r.opts.Format
}

func (r *Renderer) save(p *plot.Plot, size Size, base string) error {
	path := r.Path(base)
	if err := p.Save(size.Width, size.Height, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// saveWithAspect draws p so that one y unit on the data area is aspect times
// as long as one x unit. The data area shrinks around its centre; the canvas
// keeps its size.
func (r *Renderer) saveWithAspect(p *plot.Plot, size Size, aspect float64, base string) (err error) {
	path := r.Path(base)
	c, err := draw.NewFormattedCanvas(size.Width, size.Height, r.opts.Format)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	dc := draw.New(c)
	ratio := aspect * (p.Y.Max - p.Y.Min) / (p.X.Max - p.X.Min)
	p.Draw(aspectCanvas(dc, p.DataCanvas(dc), ratio))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("save %s: %w", path, cerr)
		}
	}()
	if _, err := c.WriteTo(f); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// aspectCanvas crops c so that its data area, currently data, gets a
// height/width ratio of ratio. An unusable ratio leaves c as is.
func aspectCanvas(c, data draw.Canvas, ratio float64) draw.Canvas {
	w, h := data.Max.X-data.Min.X, data.Max.Y-data.Min.Y
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) || w <= 0 || h <= 0 {
		return c
	}
	if want := vg.Length(ratio) * w; want < h {
		d := (h - want) / 2
		return draw.Crop(c, 0, 0, d, -d)
	}
	d := (w - h/vg.Length(ratio)) / 2
	return draw.Crop(c, d, -d, 0, 0)
}

func checkLengths(kind string, labels, values int) error {
	if labels != values {
		return fmt.Errorf("%s: %w: %d labels, %d values", kind, ErrLengthMismatch, labels, values)
	}
	if labels == 0 {
		return fmt.Errorf("%s: nothing to draw", kind)
	}
	return nil
}
