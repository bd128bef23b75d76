package printing

import (
	"context"

	"github.com/labelprint/backend/internal/domain/printing"
	"go.uber.org/zap"
)

// DefaultMarkupGrid is 8 labels per page in two columns of four
var DefaultMarkupGrid = printing.Grid{PerPage: 8, Columns: 2}

// MarkupRenderer writes labels as a grid of boxes in one HTML document
type MarkupRenderer struct {
	grid      printing.Grid
	engine    *TemplateEngine
	templates *TemplateStore
	logger    *zap.Logger
}

// MarkupOption configures a MarkupRenderer
type MarkupOption func(*MarkupRenderer)

// WithMarkupGrid overrides DefaultMarkupGrid
func WithMarkupGrid(g printing.Grid) MarkupOption {
	return func(r *MarkupRenderer) {
		r.grid = g
	}
}

// WithMarkupLogger sets the logger
func WithMarkupLogger(logger *zap.Logger) MarkupOption {
	return func(r *MarkupRenderer) {
		r.logger = logger
	}
}

// NewMarkupRenderer creates a markup renderer. The grid is validated here so
// a bad configuration fails before any record is read.
func NewMarkupRenderer(engine *TemplateEngine, templates *TemplateStore, opts ...MarkupOption) (*MarkupRenderer, error) {
	r := &MarkupRenderer{
		grid:      DefaultMarkupGrid,
		engine:    engine,
		templates: templates,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.grid.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Format returns FormatHTML
func (r *MarkupRenderer) Format() printing.Format {
	return printing.FormatHTML
}

// Grid returns the page capacity
func (r *MarkupRenderer) Grid() printing.Grid {
	return r.grid
}

// Render draws each page as a page-container of columns of invoice boxes
func (r *MarkupRenderer) Render(ctx context.Context, layout *printing.Layout, style printing.Style) (*printing.Artifact, error) {
	if err := validateLayout(layout, r.grid); err != nil {
		return nil, err
	}

	content, err := r.templates.Get(TemplateGrid)
	if err != nil {
		return nil, err
	}

	html, err := r.engine.RenderString(ctx, TemplateGrid, content, newDocumentView(layout, style))
	if err != nil {
		return nil, err
	}

	r.logger.Debug("labels rendered as markup",
		zap.Int("records", layout.RecordCount()),
		zap.Int("pages", layout.PageCount()))

	return &printing.Artifact{
		Format:      printing.FormatHTML,
		Data:        []byte(html),
		PageCount:   layout.PageCount(),
		RecordCount: layout.RecordCount(),
	}, nil
}

// Ensure MarkupRenderer implements Renderer
var _ Renderer = (*MarkupRenderer)(nil)
