package printing

import (
	"context"

	"github.com/labelprint/backend/internal/domain/printing"
	"go.uber.org/zap"
)

const (
	// DefaultPrintPerPage is the number of stacked labels on one sheet
	DefaultPrintPerPage = 5

	boxSpacingMM = 2.0
	boxPaddingMM = 5.0
	lineHeightMM = 6.0
)

// PrintRenderer stacks full-width label boxes on A4 sheets and converts the
// document to PDF. The PDF engine performs RTL shaping and bidi reordering.
type PrintRenderer struct {
	perPage     int
	paperSize   printing.PaperSize
	orientation printing.Orientation
	margins     printing.Margins
	engine      *TemplateEngine
	templates   *TemplateStore
	pdf         PDFRenderer
	logger      *zap.Logger
}

// PrintOption configures a PrintRenderer
type PrintOption func(*PrintRenderer)

// WithPerPage overrides DefaultPrintPerPage
func WithPerPage(n int) PrintOption {
	return func(r *PrintRenderer) {
		r.perPage = n
	}
}

// WithPrintLogger sets the logger
func WithPrintLogger(logger *zap.Logger) PrintOption {
	return func(r *PrintRenderer) {
		r.logger = logger
	}
}

// NewPrintRenderer creates a print renderer backed by pdf
func NewPrintRenderer(engine *TemplateEngine, templates *TemplateStore, pdf PDFRenderer, opts ...PrintOption) (*PrintRenderer, error) {
	r := &PrintRenderer{
		perPage:     DefaultPrintPerPage,
		paperSize:   printing.PaperSizeA4,
		orientation: printing.OrientationPortrait,
		margins:     printing.DefaultMargins(),
		engine:      engine,
		templates:   templates,
		pdf:         pdf,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.Grid().Validate(); err != nil {
		return nil, err
	}
	if pdf == nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "PDF renderer is required", nil)
	}
	return r, nil
}

// Format returns FormatPDF
func (r *PrintRenderer) Format() printing.Format {
	return printing.FormatPDF
}

// Grid returns a single column of perPage labels
func (r *PrintRenderer) Grid() printing.Grid {
	return printing.Grid{PerPage: r.perPage, Columns: 1}
}

// Render produces one A4 sheet per layout page
func (r *PrintRenderer) Render(ctx context.Context, layout *printing.Layout, style printing.Style) (*printing.Artifact, error) {
	if err := validateLayout(layout, r.Grid()); err != nil {
		return nil, err
	}

	content, err := r.templates.Get(TemplateStacked)
	if err != nil {
		return nil, err
	}

	view := newDocumentView(layout, style)
	view.Sheet = r.sheet()

	html, err := r.engine.RenderString(ctx, TemplateStacked, content, view)
	if err != nil {
		return nil, err
	}

	result, err := r.pdf.Render(ctx, &RenderRequest{
		HTML:        html,
		PaperSize:   r.paperSize,
		Orientation: r.orientation,
		Margins:     r.margins,
		Title:       view.Title,
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("labels rendered as PDF",
		zap.Int("records", layout.RecordCount()),
		zap.Int("pages", layout.PageCount()),
		zap.Int("pdf_pages", result.PageCount),
		zap.Duration("duration", result.RenderDuration))

	return &printing.Artifact{
		Format:      printing.FormatPDF,
		Data:        result.PDFData,
		PageCount:   layout.PageCount(),
		RecordCount: layout.RecordCount(),
	}, nil
}

// sheet computes the box geometry: each slot is an equal share of the usable
// height and the drawn box leaves boxSpacingMM below it.
func (r *PrintRenderer) sheet() *sheetView {
	width, height := r.paperSize.Dimensions()
	if r.orientation == printing.OrientationLandscape {
		width, height = height, width
	}
	_, usable := r.margins.Usable(r.paperSize, r.orientation)
	slot := float64(usable) / float64(r.perPage)

	return &sheetView{
		Width:      float64(width),
		Height:     float64(height),
		Margin:     float64(r.margins.Top),
		BoxHeight:  slot - boxSpacingMM,
		Spacing:    boxSpacingMM,
		Padding:    boxPaddingMM,
		LineHeight: lineHeightMM,
	}
}

// Ensure PrintRenderer implements Renderer
var _ Renderer = (*PrintRenderer)(nil)
