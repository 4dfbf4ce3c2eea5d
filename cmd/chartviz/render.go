package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/chunkviz/internal/config"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/chart"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/plan"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/record"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/report"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/visualizer"
	"github.com/DjordjeVuckovic/chunkviz/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type renderFlags struct {
	out         string
	planPath    string
	metrics     string
	onError     string
	workers     int
	format      string
	filename    string
	model       string
	k           string
	threshold   string
	summaryOnly bool
	noProgress  bool
}

// renderJob is a fully resolved render request.
type renderJob struct {
	inputs      []string
	resultDir   string
	summaryOnly bool
	opts        visualizer.Options
}

func newRenderCmd(a *app) *cobra.Command {
	f := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [files or globs...]",
		Short: "Render charts from result files",
		Example: `  chartviz render results/*.json
  chartviz render --plan configs/chartviz/plan.yaml --workers 4
  chartviz render "results/**/*.json" --metrics hit_rate,mrr --format svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := f.resolve(cmd, a.cfg, args)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return runRender(ctx, cmd, job)
		},
	}

	f.bind(cmd.Flags())
	return cmd
}

func (f *renderFlags) bind(fl *pflag.FlagSet) {
	fl.StringVarP(&f.out, "out", "o", "", "Result directory (default from plan or CHARTVIZ_RESULT_DIR)")
	fl.StringVarP(&f.planPath, "plan", "p", "", "YAML render plan")
	fl.StringVar(&f.metrics, "metrics", "", "Comma-separated metrics (default hit_rate,map,mrr,ndcg,tnr)")
	fl.StringVar(&f.onError, "on-error", "", "What to do with unusable files: abort or skip")
	fl.IntVarP(&f.workers, "workers", "w", 0, "Radar charts rendered in parallel")
	fl.StringVar(&f.format, "format", "", "Image format: png, svg, pdf, jpg, tif or eps")
	fl.StringVar(&f.filename, "filename", "", "Output context: searched file name")
	fl.StringVar(&f.model, "embedding-model", "", "Output context: embedding model")
	fl.StringVar(&f.k, "k", "", "Output context: k value")
	fl.StringVar(&f.threshold, "threshold", "", "Output context: threshold")
	fl.BoolVar(&f.summaryOnly, "summary-only", false, "Print the summary table without drawing charts")
	fl.BoolVar(&f.noProgress, "no-progress", false, "Hide the progress bar")
}

// resolve layers settings: environment, then values the plan file sets, then
// flags that were set explicitly.
func (f *renderFlags) resolve(cmd *cobra.Command, cfg *config.Config, args []string) (*renderJob, error) {
	job := &renderJob{
		resultDir:   cfg.ResultDir,
		summaryOnly: f.summaryOnly,
		opts: visualizer.Options{
			Workers: cfg.Workers,
			Charts:  chart.Options{Format: cfg.ImageFormat},
		},
	}
	patterns := args

	if f.planPath != "" {
		p, err := plan.LoadFromFile(f.planPath)
		if err != nil {
			return nil, err
		}
		job.opts.Metrics = p.Metrics
		job.opts.OnError = p.OnError
		job.opts.Context = p.Context
		if p.ResultDir != "" {
			job.resultDir = p.ResultDir
		}
		if p.Workers != 0 {
			job.opts.Workers = p.Workers
		}
		if p.Charts.Format != "" {
			job.opts.Charts.Format = p.Charts.Format
		}
		if len(patterns) == 0 {
			patterns = p.Inputs
		}
	}

	changed := cmd.Flags().Changed
	if changed("out") {
		job.resultDir = f.out
	}
	if changed("metrics") {
		job.opts.Metrics = utils.SplitList(f.metrics)
		if len(job.opts.Metrics) == 0 {
			return nil, fmt.Errorf("--metrics names no metric")
		}
	}
	if changed("on-error") {
		policy, err := visualizer.ParseErrorPolicy(f.onError)
		if err != nil {
			return nil, err
		}
		job.opts.OnError = policy
	}
	if changed("workers") {
		if f.workers < 1 {
			return nil, fmt.Errorf("--workers must be at least 1, got %d", f.workers)
		}
		job.opts.Workers = f.workers
	}
	if changed("format") {
		job.opts.Charts.Format = f.format
	}

	flagCtx := record.Context{Filename: f.filename, EmbeddingModel: f.model, KValue: f.k, Threshold: f.threshold}
	if !flagCtx.IsZero() {
		if err := flagCtx.Validate(); err != nil {
			return nil, fmt.Errorf("context flags: %w", err)
		}
		job.opts.Context = flagCtx
	}

	if len(patterns) == 0 {
		return nil, fmt.Errorf("no result files given: pass files or globs, or --plan")
	}
	inputs, err := plan.ExpandInputs(patterns)
	if err != nil {
		return nil, err
	}
	job.inputs = inputs

	job.opts.Progress = visualizer.NewProgress(!f.noProgress && !f.summaryOnly)
	return job, nil
}

func runRender(ctx context.Context, cmd *cobra.Command, job *renderJob) error {
	slog.Info("Rendering charts",
		"inputs", len(job.inputs),
		"result_dir", job.resultDir,
		"workers", job.opts.Workers,
		"on_error", job.opts.OnError,
	)

	var (
		res *visualizer.Result
		err error
	)
	if job.summaryOnly {
		res, err = visualizer.Summarize(ctx, job.inputs, job.opts)
	} else {
		res, err = visualizer.Visualize(ctx, job.inputs, job.resultDir, job.opts)
	}
	if err != nil {
		return err
	}

	report.WriteTable(res.Report, cmd.OutOrStdout())
	if res.ManifestPath != "" {
		slog.Info("Manifest written", "path", res.ManifestPath, "summary", res.SummaryPath)
	}
	return nil
}
