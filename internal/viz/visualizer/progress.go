package visualizer

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

type ProgressReporter interface {
	Start(total int)
	Increment()
	Finish()
}

// NoProgress discards progress updates.
type NoProgress struct{}

func (NoProgress) Start(int)  {}
func (NoProgress) Increment() {}
func (NoProgress) Finish()    {}

// ChartProgress draws a bar of written charts. Increment may be called from
// several goroutines.
type ChartProgress struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func NewChartProgress(w io.Writer) *ChartProgress {
	return &ChartProgress{w: w}
}

func (p *ChartProgress) Start(total int) {
	if total <= 0 {
		return
	}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription("rendering charts"),
		progressbar.OptionSetWidth(32),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func (p *ChartProgress) Increment() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Add(1)
}

func (p *ChartProgress) Finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
}

// NewProgress returns a stderr bar when enabled and stderr is a terminal.
func NewProgress(enabled bool) ProgressReporter {
	if !enabled || !term.IsTerminal(int(os.Stderr.Fd())) {
		return NoProgress{}
	}
	return NewChartProgress(os.Stderr)
}
