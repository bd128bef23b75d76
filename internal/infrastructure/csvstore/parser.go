package csvstore

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Parser reads a header-mapped CSV stream
type Parser struct {
	headers    []string
	headerMap  map[string]int
	currentRow int
	reader     *csv.Reader
}

// NewParser creates a parser over r. A leading UTF-8 BOM is discarded.
func NewParser(r io.Reader) (*Parser, error) {
	p := &Parser{
		headerMap: make(map[string]int),
	}

	br := bufio.NewReader(r)
	bom, err := br.Peek(3)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	// UTF-8 BOM: 0xEF, 0xBB, 0xBF
	if len(bom) >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = br.Discard(3)
	}

	p.reader = csv.NewReader(br)
	p.reader.LazyQuotes = true
	p.reader.FieldsPerRecord = -1 // rows may be shorter than the header

	return p, nil
}

// ParseHeader reads the header row. It returns io.EOF for an empty stream.
func (p *Parser) ParseHeader() error {
	record, err := p.reader.Read()
	if err == io.EOF {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	p.headers = make([]string, len(record))
	for i, h := range record {
		if !utf8.ValidString(h) {
			return ErrInvalidEncoding
		}
		h = strings.TrimSpace(h)
		p.headers[i] = h
		if _, dup := p.headerMap[h]; !dup {
			p.headerMap[h] = i
		}
	}
	p.currentRow = 1

	if len(p.headers) == 0 || (len(p.headers) == 1 && p.headers[0] == "") {
		return ErrMissingHeader
	}
	return nil
}

// Headers returns the parsed header names
func (p *Parser) Headers() []string {
	return p.headers
}

// HasHeader checks if a header exists
func (p *Parser) HasHeader(name string) bool {
	_, ok := p.headerMap[name]
	return ok
}

// Row is one parsed data row keyed by header name
type Row struct {
	LineNumber int
	Data       map[string]string
}

// ReadRow reads the next row. Values are trimmed; columns missing from a
// short row are empty. It returns io.EOF at the end of the stream.
func (p *Parser) ReadRow() (*Row, error) {
	record, err := p.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	p.currentRow++
	if err != nil {
		return nil, fmt.Errorf("error reading row %d: %w", p.currentRow, err)
	}

	row := &Row{
		LineNumber: p.currentRow,
		Data:       make(map[string]string, len(p.headers)),
	}
	for header, i := range p.headerMap {
		if i >= len(record) {
			row.Data[header] = ""
			continue
		}
		if !utf8.ValidString(record[i]) {
			return nil, fmt.Errorf("row %d: %w", p.currentRow, ErrInvalidEncoding)
		}
		row.Data[header] = strings.TrimSpace(record[i])
	}
	return row, nil
}
