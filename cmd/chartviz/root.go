package main

import (
	"github.com/DjordjeVuckovic/chunkviz/internal/config"
	"github.com/DjordjeVuckovic/chunkviz/pkg/logger"
	"github.com/spf13/cobra"
)

// app carries state shared by subcommands once the root has run.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "chartviz",
		Short: "Chart retrieval metrics of chunking methods",
		Long: `chartviz reads evaluation result files, one per chunking method, and draws
a radar chart per method plus a box plot and a bar chart per metric.

Charts land under <result_dir>/<filename>/<embedding_model>/k=<k>&threshold=<threshold>/.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.Setup(cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newServeCmd(a))
	return root
}
