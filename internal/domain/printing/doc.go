// Package printing contains the label printing domain: paper sizes and
// margins, output formats, the render style, and the paginator that tiles
// customer records into pages, columns and slots.
package printing
