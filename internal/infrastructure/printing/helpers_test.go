package printing

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/labelprint/backend/internal/domain/customer"
	"github.com/labelprint/backend/internal/domain/printing"
	"github.com/stretchr/testify/require"
)

func makeRecords(n int) customer.RecordSet {
	records := make(customer.RecordSet, n)
	for i := range records {
		records[i] = customer.NewRecord(
			fmt.Sprintf("مشتری %d", i+1),
			fmt.Sprintf("0912000%04d", i+1),
			fmt.Sprintf("تهران، خیابان %d", i+1),
			fmt.Sprintf("1%09d", i+1),
		)
	}
	return records
}

func paginate(t *testing.T, records customer.RecordSet, g printing.Grid) *printing.Layout {
	t.Helper()
	layout, err := printing.Paginate(records, g)
	require.NoError(t, err)
	return layout
}

func newTemplates(t *testing.T) *TemplateStore {
	t.Helper()
	store, err := NewTemplateStore(nil)
	require.NoError(t, err)
	return store
}

// fakePDFRenderer records requests instead of launching a browser
type fakePDFRenderer struct {
	mu       sync.Mutex
	requests []*RenderRequest
	err      error
	closed   bool
}

func (f *fakePDFRenderer) Render(_ context.Context, req *RenderRequest) (*RenderResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &RenderResult{PDFData: []byte("%PDF-1.4 fake"), PageCount: 1}, nil
}

func (f *fakePDFRenderer) Close() error {
	f.closed = true
	return nil
}

func (f *fakePDFRenderer) last() *RenderRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return nil
	}
	return f.requests[len(f.requests)-1]
}
