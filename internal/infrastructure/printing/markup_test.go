package printing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/labelprint/backend/internal/domain/customer"
	"github.com/labelprint/backend/internal/domain/printing"
	"github.com/labelprint/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMarkup(t *testing.T, opts ...MarkupOption) *MarkupRenderer {
	t.Helper()
	r, err := NewMarkupRenderer(NewTemplateEngine(), newTemplates(t), opts...)
	require.NoError(t, err)
	return r
}

func renderMarkup(t *testing.T, r *MarkupRenderer, records customer.RecordSet, style printing.Style) string {
	t.Helper()
	artifact, err := r.Render(context.Background(), paginate(t, records, r.Grid()), style)
	require.NoError(t, err)
	assert.Equal(t, printing.FormatHTML, artifact.Format)
	return string(artifact.Data)
}

// pageBlocks splits the document body into the markup of each page
func pageBlocks(doc string) []string {
	parts := strings.Split(doc, `<div class="page-container"`)
	return parts[1:]
}

func TestMarkupRenderer_Defaults(t *testing.T) {
	r := newMarkup(t)

	assert.Equal(t, printing.FormatHTML, r.Format())
	assert.Equal(t, printing.Grid{PerPage: 8, Columns: 2}, r.Grid())
}

func TestMarkupRenderer_InvalidGrid(t *testing.T) {
	_, err := NewMarkupRenderer(NewTemplateEngine(), newTemplates(t),
		WithMarkupGrid(printing.Grid{PerPage: 8, Columns: 0}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidGrid))
}

func TestMarkupRenderer_NineRecordsTwoPages(t *testing.T) {
	r := newMarkup(t)
	doc := renderMarkup(t, r, makeRecords(9), printing.DefaultStyle())

	pages := pageBlocks(doc)
	require.Len(t, pages, 2)
	assert.Equal(t, 8, strings.Count(pages[0], `class="invoice-box"`))
	assert.Equal(t, 1, strings.Count(pages[1], `class="invoice-box"`))
	assert.Equal(t, 1, strings.Count(doc, `<div class="page-break">`), "page break after every page except the last")
	assert.Contains(t, pages[1], "مشتری 9")
}

func TestMarkupRenderer_ColumnMajorFill(t *testing.T) {
	r := newMarkup(t)
	doc := renderMarkup(t, r, makeRecords(8), printing.DefaultStyle())

	columns := strings.Split(pageBlocks(doc)[0], `<div class="column">`)[1:]
	require.Len(t, columns, 2)
	assert.Contains(t, columns[0], "مشتری 1<")
	assert.Contains(t, columns[0], "مشتری 4<")
	assert.Contains(t, columns[1], "مشتری 5<")
	assert.Contains(t, columns[1], "مشتری 8<")
	assert.NotContains(t, columns[1], "مشتری 4<")
}

func TestMarkupRenderer_FieldsInOrder(t *testing.T) {
	r := newMarkup(t)
	doc := renderMarkup(t, r, makeRecords(1), printing.DefaultStyle())

	name := strings.Index(doc, customer.LabelFullName+":")
	phone := strings.Index(doc, customer.LabelPhone+":")
	address := strings.Index(doc, customer.LabelAddress+":")
	postal := strings.Index(doc, customer.LabelPostalCode+":")

	require.True(t, name > 0)
	assert.True(t, name < phone && phone < address && address < postal)
	assert.Contains(t, doc, `<div class="invoice-header">`+customer.DefaultCaption+`</div>`)
}

func TestMarkupRenderer_EscapesValues(t *testing.T) {
	r := newMarkup(t)
	records := customer.RecordSet{customer.NewRecord("<script>alert(1)</script>", "a&b", "", "")}

	doc := renderMarkup(t, r, records, printing.DefaultStyle())

	assert.NotContains(t, doc, "<script>alert(1)</script>")
	assert.Contains(t, doc, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, doc, "a&amp;b")
}

func TestMarkupRenderer_EmptyLayout(t *testing.T) {
	r := newMarkup(t)
	artifact, err := r.Render(context.Background(), paginate(t, nil, r.Grid()), printing.DefaultStyle())
	require.NoError(t, err)

	doc := string(artifact.Data)
	assert.Equal(t, 0, artifact.PageCount)
	assert.Empty(t, pageBlocks(doc))
	assert.NotContains(t, doc, `class="invoice-box"`)
	assert.Contains(t, doc, "</html>")
}

func TestMarkupRenderer_DocumentAttributes(t *testing.T) {
	r := newMarkup(t)

	doc := renderMarkup(t, r, makeRecords(1), printing.DefaultStyle())
	assert.Contains(t, doc, `<html lang="fa" dir="rtl">`)
	assert.Contains(t, doc, "@import url('https://fonts.googleapis.com/")
	assert.Contains(t, doc, "font-family: 'Noto Naskh Arabic', serif")
	assert.Contains(t, doc, "font-size: 11pt")
	assert.Contains(t, doc, "font-size: 10pt")

	style := printing.DefaultStyle()
	style.Language = "en"
	style.FontURL = ""
	doc = renderMarkup(t, r, makeRecords(1), style)
	assert.Contains(t, doc, `<html lang="en" dir="ltr">`)
	assert.NotContains(t, doc, "@import")
}

func TestMarkupRenderer_ShopCaption(t *testing.T) {
	r := newMarkup(t)
	style := printing.DefaultStyle()
	style.Caption = "فروشگاه نمونه"

	doc := renderMarkup(t, r, makeRecords(3), style)
	assert.Equal(t, 3, strings.Count(doc, `<div class="invoice-header">فروشگاه نمونه</div>`))
}

func TestMarkupRenderer_GridMismatch(t *testing.T) {
	r := newMarkup(t)
	layout := paginate(t, makeRecords(3), printing.Grid{PerPage: 4, Columns: 1})

	_, err := r.Render(context.Background(), layout, printing.DefaultStyle())
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeInvalidLayout, renderErr.Code)

	_, err = r.Render(context.Background(), nil, printing.DefaultStyle())
	require.ErrorAs(t, err, &renderErr)
}

func TestMarkupRenderer_UnevenColumns(t *testing.T) {
	r := newMarkup(t, WithMarkupGrid(printing.Grid{PerPage: 5, Columns: 2}))
	doc := renderMarkup(t, r, makeRecords(5), printing.DefaultStyle())

	columns := strings.Split(pageBlocks(doc)[0], `<div class="column">`)[1:]
	require.Len(t, columns, 2)
	assert.Equal(t, 3, strings.Count(columns[0], `class="invoice-box"`))
	assert.Equal(t, 2, strings.Count(columns[1], `class="invoice-box"`))
	assert.Contains(t, doc, "grid-template-columns: repeat(2, 1fr)")
}
