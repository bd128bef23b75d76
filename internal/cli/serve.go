package cli

import (
	"os/signal"
	"syscall"

	"github.com/labelprint/backend/internal/bootstrap"
	"github.com/labelprint/backend/internal/infrastructure/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the customer entry form and label downloads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.App.Port = port
			}

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync(log) }()

			log.Info("Starting label printer",
				zap.String("app", cfg.App.Name),
				zap.String("env", cfg.App.Env),
				zap.String("port", cfg.App.Port))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := bootstrap.New(ctx, cfg, log, root.appOptions...)
			if err != nil {
				return err
			}
			defer func() {
				if err := app.Close(); err != nil {
					log.Warn("Failed to close PDF renderer", zap.Error(err))
				}
			}()

			srv, err := app.NewServer()
			if err != nil {
				return err
			}
			return bootstrap.Serve(ctx, srv, log)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8080", "HTTP port (default: app.port)")
	return cmd
}
