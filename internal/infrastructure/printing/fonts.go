package printing

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/labelprint/backend/internal/domain/printing"
)

// LoadFontFile reads a TrueType font to embed into rendered documents
func LoadFontFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewRenderError(ErrCodeFontUnavailable, "failed to read font file "+path, err)
	}
	if len(data) == 0 {
		return nil, NewRenderError(ErrCodeFontUnavailable, "font file is empty: "+path, nil)
	}
	return data, nil
}

// fontCSS returns the stylesheet prologue that makes style.FontFamily
// available: an embedded @font-face when font data is present, else an
// @import of the remote stylesheet, else nothing.
func fontCSS(style printing.Style) string {
	family := cssString(style.FontFamily)
	switch {
	case len(style.FontData) > 0:
		return fmt.Sprintf("@font-face { font-family: %s; src: url(data:font/ttf;base64,%s) format('truetype'); }",
			family, base64.StdEncoding.EncodeToString(style.FontData))
	case style.FontURL != "":
		return fmt.Sprintf("@import url(%s);", cssString(style.FontURL))
	default:
		return ""
	}
}

// fontStack is the CSS font-family value with a generic fallback
func fontStack(family string) string {
	return cssString(family) + ", serif"
}

// cssString quotes s as a CSS string literal
func cssString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", " ", "<", `\3c `, ">", `\3e `)
	return "'" + r.Replace(s) + "'"
}
