package chart

import (
	"image/color"
	"math"
	"strconv"

	"github.com/DjordjeVuckovic/chunkviz/pkg/utils"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	radarLineColor  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	radarFillColor  = color.NRGBA{R: 0xae, G: 0xc7, B: 0xe8, A: 0x40}
	radarTextColor  = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	radarPointColor = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}

	gridColor    = colornames.Lightgray
	boxFillColor = colornames.Lightsteelblue
	barFillColor = colornames.Skyblue
	barEdgeColor = colornames.Black
)

var (
	radarLineWidth = vg.Points(2)
	gridLineWidth  = vg.Points(0.5)
	pointRadius    = vg.Points(4)
	boxWidth       = vg.Points(40)
	barWidth       = vg.Points(40)
)

const labelDecimals = 4

// valueLabel formats v rounded to four decimals without trailing zeros.
func valueLabel(v float64) string {
	return strconv.FormatFloat(utils.RoundDecimal(v, labelDecimals), 'f', -1, 64)
}

// rotateTickLabels turns tick labels of a horizontal axis a quarter turn so
// long, multi-line method names hang below the axis.
func rotateTickLabels(a *plot.Axis) {
	a.Tick.Label.Rotation = math.Pi / 2
	a.Tick.Label.XAlign = draw.XRight
	a.Tick.Label.YAlign = draw.YCenter
}
