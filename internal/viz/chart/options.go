package chart

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot/vg"
)

const DefaultFormat = "png"

// Size is a canvas size.
type Size struct {
	Width  vg.Length
	Height vg.Length
}

func Inches(w, h float64) Size {
	return Size{Width: vg.Length(w) * vg.Inch, Height: vg.Length(h) * vg.Inch}
}

type Options struct {
	// Format is the image format and file extension, without the dot.
	Format string
	Radar  Size
	Box    Size
	Bar    Size
}

func DefaultOptions() Options {
	return Options{
		Format: DefaultFormat,
		Radar:  Inches(12, 12),
		Box:    Inches(12, 10),
		Bar:    Inches(10, 15),
	}
}

var supportedFormats = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"svg":  true,
	"pdf":  true,
	"eps":  true,
	"tif":  true,
	"tiff": true,
}

// withDefaults fills unset fields and normalizes the format.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	o.Format = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(o.Format)), ".")
	if o.Format == "" {
		o.Format = def.Format
	}
	if o.Radar.Width <= 0 || o.Radar.Height <= 0 {
		o.Radar = def.Radar
	}
	if o.Box.Width <= 0 || o.Box.Height <= 0 {
		o.Box = def.Box
	}
	if o.Bar.Width <= 0 || o.Bar.Height <= 0 {
		o.Bar = def.Bar
	}
	return o
}

func (o Options) validate() error {
	if !supportedFormats[o.Format] {
		return fmt.Errorf("unsupported image format %q", o.Format)
	}
	return nil
}

// IsSupportedFormat reports whether format can be rendered.
func IsSupportedFormat(format string) bool {
	return supportedFormats[strings.TrimPrefix(strings.ToLower(format), ".")]
}
