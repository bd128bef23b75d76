package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/jszwec/csvutil"
	"github.com/labelprint/backend/internal/domain/customer"
	"go.uber.org/zap"
)

// FileStore keeps customer records in a single CSV file
type FileStore struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// Option configures a FileStore
type Option func(*FileStore)

// WithLogger sets the logger used for read failures and appends
func WithLogger(logger *zap.Logger) Option {
	return func(s *FileStore) {
		s.logger = logger
	}
}

// NewFileStore creates a store backed by the file at path
func NewFileStore(path string, opts ...Option) *FileStore {
	s := &FileStore{
		path:   path,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads every non-blank record in file order. A missing file is
// reported as ErrFileNotFound; an empty file yields an empty set.
func (s *FileStore) Load(ctx context.Context) (customer.RecordSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return customer.RecordSet{}, fmt.Errorf("%s: %w", s.path, ErrFileNotFound)
		}
		return customer.RecordSet{}, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	return parseRecords(ctx, f)
}

func parseRecords(ctx context.Context, r io.Reader) (customer.RecordSet, error) {
	records := customer.RecordSet{}

	parser, err := NewParser(r)
	if err != nil {
		return records, err
	}
	if err := parser.ParseHeader(); err != nil {
		if err == io.EOF {
			return records, nil
		}
		return records, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return customer.RecordSet{}, err
		}
		row, err := parser.ReadRow()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return customer.RecordSet{}, err
		}
		rec := customer.FromColumns(row.Data)
		if rec.IsBlank() {
			continue
		}
		records = append(records, rec)
	}
}

// ReadAll is Load with failures logged instead of returned. The result is
// never nil.
func (s *FileStore) ReadAll(ctx context.Context) customer.RecordSet {
	records, err := s.Load(ctx)
	switch {
	case err == nil:
		s.logger.Debug("customer records loaded",
			zap.String("path", s.path),
			zap.Int("count", len(records)))
		return records
	case errors.Is(err, ErrFileNotFound):
		s.logger.Warn("customer file not found, using empty record set",
			zap.String("path", s.path))
	default:
		s.logger.Error("failed to read customer file, using empty record set",
			zap.String("path", s.path),
			zap.Error(err))
	}
	return customer.RecordSet{}
}

// Append adds one record at the end of the file. The header row is written
// first when the file is new or empty; otherwise values follow the column
// order of the existing header. Appends through the same store are
// serialized; writers in other processes are not coordinated.
func (s *FileStore) Append(ctx context.Context, rec customer.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", s.path, err)
	}

	layout, err := readLayout(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to read header of %s: %w", s.path, err)
	}
	if err := appendRecord(f, rec, layout); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append to %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", s.path, err)
	}

	s.logger.Info("customer record appended",
		zap.String("path", s.path),
		zap.Bool("header_written", layout.writeHeader))
	return nil
}

// fileLayout describes how a new row has to be written to an existing file
type fileLayout struct {
	columns     []string
	writeHeader bool
	needNewline bool
}

// readLayout inspects the header row and the final byte of f. A file without
// a header row gets the canonical one.
func readLayout(f *os.File) (fileLayout, error) {
	info, err := f.Stat()
	if err != nil {
		return fileLayout{}, err
	}
	if info.Size() == 0 {
		return fileLayout{columns: customer.Headers(), writeHeader: true}, nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return fileLayout{}, err
	}
	layout := fileLayout{needNewline: last[0] != '\n'}

	parser, err := NewParser(io.NewSectionReader(f, 0, info.Size()))
	if err != nil {
		return fileLayout{}, err
	}
	if err := parser.ParseHeader(); err != nil {
		if err == io.EOF {
			layout.columns = customer.Headers()
			layout.writeHeader = true
			return layout, nil
		}
		return fileLayout{}, err
	}
	for _, name := range customer.Headers() {
		if !parser.HasHeader(name) {
			return fileLayout{}, fmt.Errorf("%w: column %q", ErrMissingHeader, name)
		}
	}
	layout.columns = encoderHeader(parser.Headers())
	return layout, nil
}

// encoderHeader renames repeated column names so the encoder keeps one
// output field per column. Readers only look at the first occurrence.
func encoderHeader(headers []string) []string {
	out := make([]string, len(headers))
	seen := make(map[string]bool, len(headers))
	for i, h := range headers {
		if seen[h] {
			h = fmt.Sprintf("%s#%d", h, i)
		}
		seen[h] = true
		out[i] = h
	}
	return out
}

func appendRecord(f *os.File, rec customer.Record, layout fileLayout) error {
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return err
	}
	if layout.needNewline {
		if _, err := f.Write([]byte{'\n'}); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(f)
	enc := csvutil.NewEncoder(cw)
	enc.SetHeader(layout.columns)
	enc.AutoHeader = layout.writeHeader
	if err := enc.Encode(rec); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
