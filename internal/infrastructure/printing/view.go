package printing

import (
	"html/template"

	"github.com/labelprint/backend/internal/domain/customer"
	"github.com/labelprint/backend/internal/domain/printing"
)

// documentView is the data handed to the label templates
type documentView struct {
	Title      string
	Lang       string
	Dir        printing.Direction
	FontCSS    template.CSS
	FontStack  template.CSS
	HeaderSize float64
	FieldSize  float64
	Columns    int
	Pages      []pageView
	Sheet      *sheetView
}

type pageView struct {
	Index   int
	Last    bool
	Columns []columnView
}

type columnView struct {
	Index int
	Boxes []boxView
}

type boxView struct {
	Caption string
	Fields  []customer.Field
}

// sheetView carries the fixed geometry of the print layout, in millimetres
type sheetView struct {
	Width      float64
	Height     float64
	Margin     float64
	BoxHeight  float64
	Spacing    float64
	Padding    float64
	LineHeight float64
}

// newDocumentView resolves style defaults and converts layout pages
func newDocumentView(layout *printing.Layout, style printing.Style) documentView {
	style = style.WithDefaults()
	dir := style.Direction
	if dir == "" {
		dir = DirectionFor(style.Language)
	}

	view := documentView{
		Title:      style.Title,
		Lang:       normalizeLanguage(style.Language),
		Dir:        dir,
		FontCSS:    template.CSS(fontCSS(style)),
		FontStack:  template.CSS(fontStack(style.FontFamily)),
		HeaderSize: style.HeaderFontSize,
		FieldSize:  style.FieldFontSize,
		Columns:    layout.Grid.Columns,
		Pages:      make([]pageView, 0, layout.PageCount()),
	}

	for _, p := range layout.Pages {
		pv := pageView{Index: p.Index, Last: p.Last, Columns: make([]columnView, 0, len(p.Columns))}
		for _, c := range p.Columns {
			cv := columnView{Index: c.Index, Boxes: make([]boxView, 0, len(c.Records))}
			for _, rec := range c.Records {
				cv.Boxes = append(cv.Boxes, boxView{Caption: style.Caption, Fields: rec.Fields()})
			}
			pv.Columns = append(pv.Columns, cv)
		}
		view.Pages = append(view.Pages, pv)
	}

	return view
}

// validateLayout rejects a layout paginated for a different grid
func validateLayout(layout *printing.Layout, grid printing.Grid) error {
	if layout == nil {
		return NewRenderError(ErrCodeInvalidLayout, "layout is nil", nil)
	}
	if layout.Grid != grid {
		return NewRenderError(ErrCodeInvalidLayout, "layout was paginated for a different grid", nil)
	}
	return nil
}
