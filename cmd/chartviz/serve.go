package main

import (
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/chunkviz/internal/server"
	pkgserver "github.com/DjordjeVuckovic/chunkviz/pkg/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var dir, port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Browse rendered charts over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.NewConfig(a.cfg, dir, port)
			if err != nil {
				return err
			}

			s := server.New(cfg, pkgserver.NewDirHealthChecker(cfg.ResultDir)).
				SetupMiddlewares().
				SetupErrorHandler().
				SetupHealthChecks(server.HealthPath)
			server.NewRunsRouter(s.Echo, cfg.ResultDir).Bind()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return s.Start(ctx)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Result directory to serve (default CHARTVIZ_RESULT_DIR)")
	cmd.Flags().StringVar(&port, "port", "", "Listen port (default PORT)")
	return cmd
}
