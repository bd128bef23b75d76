package printing

import (
	"fmt"

	"github.com/labelprint/backend/internal/domain/customer"
	"github.com/labelprint/backend/internal/domain/shared"
)

// Grid is the fixed capacity of one printed page
type Grid struct {
	PerPage int // records per page
	Columns int // columns per page
}

// Validate fails if either capacity is not positive
func (g Grid) Validate() error {
	if g.PerPage <= 0 {
		return shared.NewDomainError(shared.ErrInvalidGrid.Code,
			fmt.Sprintf("records per page must be positive, got %d", g.PerPage))
	}
	if g.Columns <= 0 {
		return shared.NewDomainError(shared.ErrInvalidGrid.Code,
			fmt.Sprintf("columns per page must be positive, got %d", g.Columns))
	}
	return nil
}

// RowsPerColumn is the number of slots in each column. When PerPage is not a
// multiple of Columns the earlier columns are filled first and the last one
// is short.
func (g Grid) RowsPerColumn() int {
	return (g.PerPage + g.Columns - 1) / g.Columns
}

// Slot addresses one record within a layout
type Slot struct {
	Page   int
	Column int
	Row    int
}

// Locate returns the slot of the record at flat index i. Within a page the
// fill is column-major: column 0 top to bottom, then column 1, and so on.
func (g Grid) Locate(i int) Slot {
	rows := g.RowsPerColumn()
	within := i % g.PerPage
	return Slot{
		Page:   i / g.PerPage,
		Column: within / rows,
		Row:    within % rows,
	}
}

// Column is an ordered run of records stacked top to bottom
type Column struct {
	Index   int
	Records []customer.Record
}

// Page is one printed sheet
type Page struct {
	Index   int
	Columns []Column
	Last    bool
}

// Count returns the number of records on the page
func (p Page) Count() int {
	n := 0
	for _, c := range p.Columns {
		n += len(c.Records)
	}
	return n
}

// Layout is the page → column → slot grouping of a record set
type Layout struct {
	Grid  Grid
	Pages []Page
	total int
}

// Paginate tiles records into pages of g.PerPage slots split over g.Columns
// columns. Empty input yields a layout with zero pages.
func Paginate(records customer.RecordSet, g Grid) (*Layout, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	pageCount := (len(records) + g.PerPage - 1) / g.PerPage
	layout := &Layout{
		Grid:  g,
		Pages: make([]Page, pageCount),
		total: len(records),
	}
	for p := range layout.Pages {
		layout.Pages[p] = Page{
			Index:   p,
			Columns: make([]Column, g.Columns),
			Last:    p == pageCount-1,
		}
		for c := range layout.Pages[p].Columns {
			layout.Pages[p].Columns[c].Index = c
		}
	}

	for i, rec := range records {
		slot := g.Locate(i)
		col := &layout.Pages[slot.Page].Columns[slot.Column]
		col.Records = append(col.Records, rec)
	}

	return layout, nil
}

// PageCount returns the number of pages
func (l *Layout) PageCount() int {
	return len(l.Pages)
}

// RecordCount returns the number of records placed in the layout
func (l *Layout) RecordCount() int {
	return l.total
}
