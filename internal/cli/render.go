package cli

import (
	"fmt"
	"path/filepath"

	"github.com/labelprint/backend/internal/bootstrap"
	"github.com/labelprint/backend/internal/domain/printing"
	"github.com/labelprint/backend/internal/infrastructure/config"
	"github.com/labelprint/backend/internal/infrastructure/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type renderOptions struct {
	format   string
	out      string
	perPage  int
	columns  int
	shop     string
	fontFile string
	data     string
}

func newRenderCommand(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the customer file as HTML or PDF labels",
		Example: `  labels render --format html --out labels.html
  labels render --format pdf --per-page 4 --shop "فروشگاه نمونه"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "html", "Output format: html or pdf")
	flags.StringVarP(&opts.out, "out", "o", "", "Output path (default: output.html_name or output.pdf_name)")
	flags.IntVar(&opts.perPage, "per-page", 0, "Labels per page (default: render.markup_per_page or render.print_per_page)")
	flags.IntVar(&opts.columns, "columns", 0, "Columns per HTML page (default: render.markup_columns)")
	flags.StringVar(&opts.shop, "shop", "", "Shop name printed on every label")
	flags.StringVar(&opts.fontFile, "font-file", "", "TrueType font embedded into the document")
	flags.StringVar(&opts.data, "data", "", "Customer CSV file (default: store.path)")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootOptions, opts *renderOptions) error {
	format, ok := printing.ParseFormat(opts.format)
	if !ok {
		return fmt.Errorf("invalid format: %s. Use 'html' or 'pdf'", opts.format)
	}

	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if err := opts.apply(cmd, cfg, format); err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync(log) }()

	ctx := cmd.Context()
	app, err := bootstrap.New(ctx, cfg, log, root.appOptions...)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn("Failed to close PDF renderer", zap.Error(err))
		}
	}()

	destination := opts.out
	if destination != "" && cfg.Output.Backend == config.BackendFileSystem {
		if destination, err = filepath.Abs(destination); err != nil {
			return err
		}
	}

	result, err := app.Service.Export(ctx, format, destination)
	if err != nil {
		return err
	}
	if result.Empty() {
		log.Warn("no customers found", zap.String("store", cfg.Store.Path))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d labels on %d pages to %s\n",
		result.RecordCount, result.PageCount, result.Location)
	return nil
}

// apply copies explicitly set flags over the loaded configuration and
// validates the result
func (o *renderOptions) apply(cmd *cobra.Command, cfg *config.Config, format printing.Format) error {
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Store.Path = o.data
	}
	if flags.Changed("shop") {
		cfg.Render.ShopName = o.shop
	}
	if flags.Changed("font-file") {
		cfg.Render.FontFile = o.fontFile
	}
	if flags.Changed("per-page") {
		if format == printing.FormatPDF {
			cfg.Render.PrintPerPage = o.perPage
		} else {
			cfg.Render.MarkupPerPage = o.perPage
		}
	}
	if flags.Changed("columns") {
		if format == printing.FormatPDF {
			return fmt.Errorf("--columns applies to html output only")
		}
		cfg.Render.MarkupColumns = o.columns
	}
	return cfg.Validate()
}
