package printing

import (
	"bytes"
	"context"
	"html/template"
	"math"
	"strconv"
	"strings"
)

// TemplateEngine handles rendering HTML templates with label data.
// It uses Go's html/template package, so every value is HTML escaped.
type TemplateEngine struct {
	funcMap template.FuncMap
}

// NewTemplateEngine creates a new template engine with default configuration
func NewTemplateEngine() *TemplateEngine {
	return &TemplateEngine{funcMap: template.FuncMap{
		// Lengths
		"mm": formatMM,
		"pt": formatPT,

		// Arithmetic
		"add": func(a, b int) int { return a + b },

		// String utilities
		"join": strings.Join,
		"trim": strings.TrimSpace,

		// Safe content, only for values built by the renderers
		"safeCSS": func(s string) template.CSS { return template.CSS(s) },
	}}
}

// RenderString renders a template string with the provided data
func (e *TemplateEngine) RenderString(ctx context.Context, name, content string, data any) (string, error) {
	if content == "" {
		return "", NewRenderError(ErrCodeInvalidHTML, "template content is empty", nil)
	}
	if err := ctx.Err(); err != nil {
		return "", NewRenderError(ErrCodeRenderTimeout, "template rendering was cancelled", err)
	}

	tmpl, err := template.New(name).Funcs(e.funcMap).Parse(content)
	if err != nil {
		return "", NewRenderError(ErrCodeInvalidHTML, "failed to parse template", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed, "failed to execute template", err)
	}

	return buf.String(), nil
}

// formatMM renders a length as a CSS millimetre value, e.g. 53.4mm
func formatMM(v float64) template.CSS {
	return template.CSS(formatLength(v) + "mm")
}

// formatPT renders a font size as a CSS point value, e.g. 11pt
func formatPT(v float64) template.CSS {
	return template.CSS(formatLength(v) + "pt")
}

// formatLength rounds to hundredths and drops trailing zeros
func formatLength(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
