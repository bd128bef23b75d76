package printing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_IsValid(t *testing.T) {
	assert.True(t, FormatHTML.IsValid())
	assert.True(t, FormatPDF.IsValid())
	assert.False(t, Format("").IsValid())
	assert.False(t, Format("DOCX").IsValid())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in     string
		want   Format
		wantOK bool
	}{
		{"html", FormatHTML, true},
		{"HTML", FormatHTML, true},
		{"Pdf", FormatPDF, true},
		{"", "", false},
		{"png", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseFormat(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_ContentTypeAndExtension(t *testing.T) {
	assert.Equal(t, "text/html; charset=utf-8", FormatHTML.ContentType())
	assert.Equal(t, "application/pdf", FormatPDF.ContentType())
	assert.Equal(t, ".html", FormatHTML.Extension())
	assert.Equal(t, ".pdf", FormatPDF.Extension())
	assert.Equal(t, "", Format("X").Extension())
}

func TestPaperSize_Dimensions(t *testing.T) {
	tests := []struct {
		size          PaperSize
		width, height int
	}{
		{PaperSizeA4, 210, 297},
		{PaperSizeA5, 148, 210},
		{PaperSize("LETTER"), 210, 297},
	}

	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			w, h := tt.size.Dimensions()
			assert.Equal(t, tt.width, w)
			assert.Equal(t, tt.height, h)
		})
	}
}

func TestOrientation_IsValid(t *testing.T) {
	assert.True(t, OrientationPortrait.IsValid())
	assert.True(t, OrientationLandscape.IsValid())
	assert.False(t, Orientation("DIAGONAL").IsValid())
}
