// Package bootstrap wires configuration into the record store, renderers,
// artifact store and label service shared by the server and the CLI.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/labelprint/backend/internal/application/labels"
	"github.com/labelprint/backend/internal/domain/customer"
	"github.com/labelprint/backend/internal/domain/printing"
	"github.com/labelprint/backend/internal/infrastructure/config"
	"github.com/labelprint/backend/internal/infrastructure/csvstore"
	infra "github.com/labelprint/backend/internal/infrastructure/printing"
	"github.com/labelprint/backend/internal/infrastructure/storage"
	"go.uber.org/zap"
)

// App holds the wired components
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Records *csvstore.FileStore
	Service *labels.Service
	Style   printing.Style

	pdf infra.PDFRenderer
}

// Option customizes New
type Option func(*options)

type options struct {
	pdf       infra.PDFRenderer
	artifacts storage.ArtifactStore
}

// WithPDFRenderer replaces the headless Chrome engine
func WithPDFRenderer(pdf infra.PDFRenderer) Option {
	return func(o *options) {
		o.pdf = pdf
	}
}

// WithArtifactStore replaces the store selected by output.backend
func WithArtifactStore(store storage.ArtifactStore) Option {
	return func(o *options) {
		o.artifacts = store
	}
}

// New builds the application from cfg. The caller owns Close.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger, opts ...Option) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	style, err := NewStyle(cfg.Render)
	if err != nil {
		return nil, err
	}

	records := csvstore.NewFileStore(cfg.Store.Path, csvstore.WithLogger(log))

	pdf := o.pdf
	if pdf == nil {
		pdf, err = infra.NewChromedpRenderer(&infra.ChromedpConfig{
			DefaultTimeout: cfg.Chrome.Timeout,
			RemoteURL:      cfg.Chrome.RemoteURL,
			ExecPath:       cfg.Chrome.ExecPath,
			NoSandbox:      cfg.Chrome.NoSandbox,
			Logger:         log,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create PDF renderer: %w", err)
		}
	}

	renderers, err := NewRenderers(cfg.Render, pdf, log)
	if err != nil {
		_ = pdf.Close()
		return nil, err
	}

	artifacts := o.artifacts
	if artifacts == nil {
		artifacts, err = NewArtifactStore(ctx, cfg, log)
		if err != nil {
			_ = pdf.Close()
			return nil, err
		}
	}

	service := labels.NewService(records, renderers, artifacts, labels.ServiceConfig{
		Style: style,
		OutputNames: map[printing.Format]string{
			printing.FormatHTML: cfg.Output.HTMLName,
			printing.FormatPDF:  cfg.Output.PDFName,
		},
	}, log)

	log.Info("Label service ready",
		zap.String("store", records.Path()),
		zap.String("output_backend", cfg.Output.Backend),
		zap.Int("markup_per_page", cfg.Render.MarkupPerPage),
		zap.Int("markup_columns", cfg.Render.MarkupColumns),
		zap.Int("print_per_page", cfg.Render.PrintPerPage))

	return &App{
		Config:  cfg,
		Logger:  log,
		Records: records,
		Service: service,
		Style:   style,
		pdf:     pdf,
	}, nil
}

// Close releases the PDF engine
func (a *App) Close() error {
	if a.pdf == nil {
		return nil
	}
	return a.pdf.Close()
}

// NewStyle builds the presentation style from render settings, reading the
// font file when one is configured
func NewStyle(cfg config.RenderConfig) (printing.Style, error) {
	style := printing.DefaultStyle()
	style.Caption = cfg.ShopTitle(customer.DefaultCaption)
	style.Title = cfg.ShopTitle(style.Title)
	if cfg.Language != "" {
		style.Language = cfg.Language
	}
	style.Direction = infra.DirectionFor(style.Language)
	if cfg.FontFamily != "" {
		style.FontFamily = cfg.FontFamily
	}
	style.FontURL = cfg.FontURL

	if cfg.FontFile != "" {
		data, err := infra.LoadFontFile(cfg.FontFile)
		if err != nil {
			return printing.Style{}, err
		}
		style.FontData = data
	}
	return style, nil
}

// NewRenderers creates the markup and print renderers over one template
// engine and store
func NewRenderers(cfg config.RenderConfig, pdf infra.PDFRenderer, log *zap.Logger) ([]infra.Renderer, error) {
	templates, err := infra.NewTemplateStore(&infra.TemplateStoreConfig{ExternalDir: cfg.TemplateDir})
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	engine := infra.NewTemplateEngine()

	markup, err := infra.NewMarkupRenderer(engine, templates,
		infra.WithMarkupGrid(printing.Grid{PerPage: cfg.MarkupPerPage, Columns: cfg.MarkupColumns}),
		infra.WithMarkupLogger(log))
	if err != nil {
		return nil, err
	}

	stacked, err := infra.NewPrintRenderer(engine, templates, pdf,
		infra.WithPerPage(cfg.PrintPerPage),
		infra.WithPrintLogger(log))
	if err != nil {
		return nil, err
	}

	return []infra.Renderer{markup, stacked}, nil
}

// NewArtifactStore selects the artifact store named by output.backend
func NewArtifactStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (storage.ArtifactStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch cfg.Output.Backend {
	case config.BackendS3:
		store, err := storage.NewS3Store(ctx, &cfg.S3, storage.WithS3Logger(log))
		if err != nil {
			return nil, fmt.Errorf("failed to create S3 store: %w", err)
		}
		if cfg.S3.CreateBucket {
			if err := store.EnsureBucket(ctx); err != nil {
				return nil, err
			}
		}
		log.Debug("artifact store ready",
			zap.String("backend", config.BackendS3),
			zap.String("bucket", store.GetBucket()))
		return store, nil
	case config.BackendFileSystem, "":
		store := storage.NewFileSystemStore(cfg.Output.Dir, storage.WithFileSystemLogger(log))
		log.Debug("artifact store ready",
			zap.String("backend", config.BackendFileSystem),
			zap.String("dir", store.BaseDir()))
		return store, nil
	default:
		return nil, fmt.Errorf("unknown output backend %q", cfg.Output.Backend)
	}
}
