package printing

import "github.com/labelprint/backend/internal/domain/customer"

// Direction is the CSS/HTML text direction of a document
type Direction string

const (
	DirectionRTL Direction = "rtl"
	DirectionLTR Direction = "ltr"
)

// Style carries the presentation options shared by all renderers
type Style struct {
	// Title is the document title (HTML <title>, PDF metadata)
	Title string
	// Caption is the header line printed inside every label box
	Caption string
	// Language is a BCP-47 tag such as "fa"
	Language string
	// Direction is derived from Language when empty
	Direction Direction
	// FontFamily is the CSS font family used for all text
	FontFamily string
	// FontURL is an optional remote stylesheet providing FontFamily
	FontURL string
	// FontData is an optional TrueType font embedded into the document
	FontData []byte
	// HeaderFontSize and FieldFontSize are in points
	HeaderFontSize float64
	FieldFontSize  float64
}

// DefaultStyle returns the style used when nothing is configured
func DefaultStyle() Style {
	return Style{
		Title:          "فاکتورهای مشتریان",
		Caption:        customer.DefaultCaption,
		Language:       "fa",
		FontFamily:     "Noto Naskh Arabic",
		FontURL:        "https://fonts.googleapis.com/css2?family=Noto+Naskh+Arabic:wght@400;700&display=swap",
		HeaderFontSize: 11,
		FieldFontSize:  10,
	}
}

// WithDefaults fills empty fields from DefaultStyle. FontURL is left as is,
// an empty value means no remote font.
func (s Style) WithDefaults() Style {
	d := DefaultStyle()
	if s.Title == "" {
		s.Title = d.Title
	}
	if s.Caption == "" {
		s.Caption = d.Caption
	}
	if s.Language == "" {
		s.Language = d.Language
	}
	if s.FontFamily == "" {
		s.FontFamily = d.FontFamily
	}
	if s.HeaderFontSize <= 0 {
		s.HeaderFontSize = d.HeaderFontSize
	}
	if s.FieldFontSize <= 0 {
		s.FieldFontSize = d.FieldFontSize
	}
	return s
}
