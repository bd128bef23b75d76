package printing

import "strings"

// Format identifies the artifact a renderer produces
type Format string

const (
	FormatHTML Format = "HTML" // paginated markup document
	FormatPDF  Format = "PDF"  // fixed-layout print document
)

// IsValid checks if the Format is a valid value
func (f Format) IsValid() bool {
	switch f {
	case FormatHTML, FormatPDF:
		return true
	}
	return false
}

// String returns the string representation of Format
func (f Format) String() string {
	return string(f)
}

// ContentType returns the MIME type of artifacts in this format
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Extension returns the file extension, including the dot
func (f Format) Extension() string {
	switch f {
	case FormatHTML:
		return ".html"
	case FormatPDF:
		return ".pdf"
	default:
		return ""
	}
}

// ParseFormat accepts "html", "pdf" in any case
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToUpper(strings.TrimSpace(s))) {
	case FormatHTML:
		return FormatHTML, true
	case FormatPDF:
		return FormatPDF, true
	}
	return "", false
}

// PaperSize represents the paper size for printing
type PaperSize string

const (
	PaperSizeA4 PaperSize = "A4" // 210mm x 297mm
	PaperSizeA5 PaperSize = "A5" // 148mm x 210mm
)

// IsValid checks if the PaperSize is a valid value
func (p PaperSize) IsValid() bool {
	switch p {
	case PaperSizeA4, PaperSizeA5:
		return true
	}
	return false
}

// String returns the string representation of PaperSize
func (p PaperSize) String() string {
	return string(p)
}

// Dimensions returns the paper dimensions in millimeters (width, height)
func (p PaperSize) Dimensions() (width, height int) {
	switch p {
	case PaperSizeA4:
		return 210, 297
	case PaperSizeA5:
		return 148, 210
	default:
		return 210, 297 // Default to A4
	}
}

// Orientation represents the page orientation for printing
type Orientation string

const (
	OrientationPortrait  Orientation = "PORTRAIT"
	OrientationLandscape Orientation = "LANDSCAPE"
)

// IsValid checks if the Orientation is a valid value
func (o Orientation) IsValid() bool {
	switch o {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// String returns the string representation of Orientation
func (o Orientation) String() string {
	return string(o)
}
