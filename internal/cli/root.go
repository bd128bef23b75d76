// Package cli implements the labels command: render the customer file to
// HTML or PDF, or serve the entry form.
package cli

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/labelprint/backend/internal/bootstrap"
	"github.com/labelprint/backend/internal/infrastructure/config"
	"github.com/labelprint/backend/internal/infrastructure/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// flags shared by every subcommand
type rootOptions struct {
	configPath string
	envFile    string
	appOptions []bootstrap.Option
}

// NewRootCommand builds the labels command tree. appOptions are passed to
// bootstrap.New by every subcommand.
func NewRootCommand(appOptions ...bootstrap.Option) *cobra.Command {
	opts := &rootOptions{appOptions: appOptions}

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Print invoice labels for the customers in a CSV file",
		Long: `labels reads customer records from a CSV file and renders them as
invoice labels: an HTML grid for screen and browser printing, or a PDF of
stacked right-to-left boxes per A4 page. It can also serve a web form that
appends new customers to the same file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile(opts.envFile)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: config.toml in . or /app)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Environment file loaded before the config")

	cmd.AddCommand(newRenderCommand(opts))
	cmd.AddCommand(newServeCommand(opts))

	return cmd
}

// loadEnvFile loads path into the environment. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// loadConfig reads the config file and environment
func (o *rootOptions) loadConfig() (*config.Config, error) {
	return config.LoadFile(o.configPath)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
}
