// Package printing renders paginated customer labels.
//
// Two renderers share the Renderer capability:
//   - MarkupRenderer writes a grid of label boxes as a self-contained HTML
//     document.
//   - PrintRenderer lays labels out as stacked boxes on A4 sheets and converts
//     the result to PDF through a PDFRenderer (headless Chrome by default),
//     which also takes care of right-to-left shaping.
//
// Example usage:
//
//	layout, err := printing.Paginate(records, renderer.Grid())
//	if err != nil {
//	    return err
//	}
//	artifact, err := renderer.Render(ctx, layout, printing.DefaultStyle())
package printing
