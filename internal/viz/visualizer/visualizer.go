// Package visualizer turns retrieval result files into per-method radar charts
// and per-metric box and bar charts under one output subtree.
package visualizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/DjordjeVuckovic/chunkviz/internal/viz/aggregate"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/layout"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/manifest"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/record"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/report"
	"golang.org/x/sync/errgroup"
)

const SummaryFile = "summary.json"

var ErrNoRecords = errors.New("no usable result files")

type Result struct {
	Context      record.Context
	Dir          string
	Methods      []string
	Skipped      []string
	Report       *report.Report
	Manifest     *manifest.Manifest
	ManifestPath string
	SummaryPath  string
}

// Visualize reads every result file in paths and writes the charts of their
// shared context under resultDir.
func Visualize(ctx context.Context, paths []string, resultDir string, opts Options) (*Result, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	res := &Result{}
	coll, records, err := collect(ctx, paths, opts, res)
	if err != nil {
		return nil, err
	}

	res.Context, err = aggregate.ResolveContext(opts.Context, records)
	if err != nil {
		return nil, err
	}
	res.Methods = coll.Methods()

	out := layout.New(resultDir, res.Context)
	if err := out.Ensure(); err != nil {
		return nil, err
	}
	res.Dir = out.Dir()

	res.Manifest = manifest.New(res.Context, formatOf(opts.Drawer), opts.Metrics, res.Methods)
	for _, r := range records {
		res.Manifest.Sources = append(res.Manifest.Sources, r.Source)
	}

	opts.Progress.Start(len(res.Methods) + 2*len(opts.Metrics))
	defer opts.Progress.Finish()

	radars, err := drawRadars(ctx, coll, out, opts)
	if err != nil {
		return nil, err
	}
	for _, c := range radars {
		res.Manifest.Add(c)
	}

	metricCharts, err := drawMetrics(ctx, coll, out, opts)
	if err != nil {
		return nil, err
	}
	for _, c := range metricCharts {
		res.Manifest.Add(c)
	}

	res.Report, err = report.Generate(coll, report.Meta{
		RunID:       res.Manifest.RunID.String(),
		Timestamp:   res.Manifest.GeneratedAt,
		Context:     res.Context,
		Environment: report.NewEnvironmentInfo(),
	})
	if err != nil {
		return nil, err
	}

	res.SummaryPath = filepath.Join(res.Dir, SummaryFile)
	if err := report.WriteJSON(res.Report, res.SummaryPath); err != nil {
		return nil, err
	}
	res.ManifestPath, err = res.Manifest.Write(res.Dir)
	if err != nil {
		return nil, err
	}

	slog.Info("Charts written",
		"dir", res.Dir,
		"methods", len(res.Methods),
		"metrics", len(opts.Metrics),
		"charts", len(res.Manifest.Charts),
		"skipped", len(res.Skipped),
	)
	return res, nil
}

// Summarize aggregates paths like Visualize but draws and writes nothing.
// The returned result has no directory, manifest or file paths.
func Summarize(ctx context.Context, paths []string, opts Options) (*Result, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	res := &Result{}
	coll, records, err := collect(ctx, paths, opts, res)
	if err != nil {
		return nil, err
	}
	res.Context, err = aggregate.ResolveContext(opts.Context, records)
	if err != nil {
		return nil, err
	}
	res.Methods = coll.Methods()

	res.Report, err = report.Generate(coll, report.Meta{
		Timestamp:   time.Now().UTC(),
		Context:     res.Context,
		Environment: report.NewEnvironmentInfo(),
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// collect parses the inputs in order and applies the error policy to each.
func collect(ctx context.Context, paths []string, opts Options, res *Result) (*aggregate.Collection, []*record.Record, error) {
	coll := aggregate.NewCollection(opts.Metrics)
	records := make([]*record.Record, 0, len(paths))

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		start := time.Now()
		rec, err := record.LoadFromFile(p, opts.Metrics)
		if err == nil {
			err = coll.Add(rec)
		}
		if err != nil {
			if opts.OnError == Abort {
				return nil, nil, err
			}
			slog.Warn("Skipping result file", "path", p, "error", err)
			res.Skipped = append(res.Skipped, p)
			continue
		}

		slog.Debug("Result file loaded",
			"path", p,
			"method", rec.ChunkingMethod,
			"elapsed", time.Since(start),
		)
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: %d given, %d skipped", ErrNoRecords, len(paths), len(res.Skipped))
	}
	return coll, records, nil
}

// drawRadars renders one radar per distinct method on at most opts.Workers
// goroutines. The returned charts follow method order.
func drawRadars(ctx context.Context, coll *aggregate.Collection, out layout.Layout, opts Options) ([]manifest.Chart, error) {
	methods := coll.Methods()
	charts := make([]manifest.Chart, len(methods))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, method := range methods {
		i, method := i, method
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			base := out.MethodPath(method)
			label := record.DisplayLabel(method)
			if err := opts.Drawer.DrawRadar(opts.Metrics, coll.Normalized(method), label, base); err != nil {
				return fmt.Errorf("radar %q: %w", method, err)
			}
			charts[i] = manifest.Chart{
				Kind:   manifest.KindRadar,
				Name:   method,
				Path:   out.Rel(opts.Drawer.Path(base)),
				Method: method,
			}
			opts.Progress.Increment()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return charts, nil
}

// drawMetrics renders the box and bar chart of every metric in order.
func drawMetrics(ctx context.Context, coll *aggregate.Collection, out layout.Layout, opts Options) ([]manifest.Chart, error) {
	labels := record.DisplayLabels(coll.Methods())
	charts := make([]manifest.Chart, 0, 2*len(opts.Metrics))

	for _, metric := range opts.Metrics {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lists, err := coll.Scores(metric)
		if err != nil {
			return nil, err
		}
		means, err := coll.Means(metric)
		if err != nil {
			return nil, err
		}

		boxBase := out.BoxPath(metric)
		if err := opts.Drawer.DrawBox(labels, lists, metric, boxBase); err != nil {
			return nil, fmt.Errorf("box %q: %w", metric, err)
		}
		opts.Progress.Increment()
		charts = append(charts, manifest.Chart{
			Kind:   manifest.KindBox,
			Name:   metric,
			Path:   out.Rel(opts.Drawer.Path(boxBase)),
			Metric: metric,
		})

		barBase := out.BarPath(metric)
		if err := opts.Drawer.DrawBar(labels, means, metric, barBase); err != nil {
			return nil, fmt.Errorf("bar %q: %w", metric, err)
		}
		opts.Progress.Increment()
		charts = append(charts, manifest.Chart{
			Kind:   manifest.KindBar,
			Name:   metric + "_bar",
			Path:   out.Rel(opts.Drawer.Path(barBase)),
			Metric: metric,
		})
	}
	return charts, nil
}

// formatOf reports the image format of drawers that expose one.
func formatOf(d ChartDrawer) string {
	if f, ok := d.(interface{ Format() string }); ok {
		return f.Format()
	}
	return ""
}
