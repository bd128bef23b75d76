package labels

import (
	"context"
	"fmt"

	"github.com/labelprint/backend/internal/domain/customer"
	"github.com/labelprint/backend/internal/domain/printing"
	"github.com/labelprint/backend/internal/domain/shared"
	infra "github.com/labelprint/backend/internal/infrastructure/printing"
	"github.com/labelprint/backend/internal/infrastructure/storage"
	"go.uber.org/zap"
)

// ErrUnsupportedFormat is returned when no renderer is registered for a format
var ErrUnsupportedFormat = shared.NewDomainError("UNSUPPORTED_FORMAT", "No renderer is configured for this format")

// RecordStore is the customer file as seen by the service
type RecordStore interface {
	ReadAll(ctx context.Context) customer.RecordSet
	Append(ctx context.Context, record customer.Record) error
}

// ServiceConfig holds the defaults applied by the service
type ServiceConfig struct {
	Style printing.Style
	// OutputNames maps a format to the key used when Export gets no destination
	OutputNames map[printing.Format]string
}

// Service generates labels from the record store and accepts new records
type Service struct {
	records   RecordStore
	renderers map[printing.Format]infra.Renderer
	artifacts storage.ArtifactStore
	config    ServiceConfig
	logger    *zap.Logger
}

// NewService creates a new label Service. Renderers are keyed by their Format.
func NewService(
	records RecordStore,
	renderers []infra.Renderer,
	artifacts storage.ArtifactStore,
	config ServiceConfig,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	byFormat := make(map[printing.Format]infra.Renderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &Service{
		records:   records,
		renderers: byFormat,
		artifacts: artifacts,
		config:    config,
		logger:    logger,
	}
}

// Generate reads all records, paginates them for the format's renderer and
// renders the result. An empty store yields an artifact with zero pages.
func (s *Service) Generate(ctx context.Context, format printing.Format) (*GenerateResult, error) {
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, shared.NewDomainError(ErrUnsupportedFormat.Code,
			fmt.Sprintf("no renderer is configured for format %q", format))
	}

	records := s.records.ReadAll(ctx)
	if records.IsEmpty() {
		s.logger.Debug("no customer records, rendering an empty document",
			zap.String("format", format.String()))
	}

	layout, err := printing.Paginate(records, renderer.Grid())
	if err != nil {
		return nil, err
	}

	artifact, err := renderer.Render(ctx, layout, s.config.Style)
	if err != nil {
		s.logger.Error("failed to render labels",
			zap.String("format", format.String()),
			zap.Int("records", records.Len()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to render labels: %w", err)
	}

	s.logger.Info("labels generated",
		zap.String("format", format.String()),
		zap.Int("records", layout.RecordCount()),
		zap.Int("pages", layout.PageCount()),
		zap.Int("bytes", artifact.Size()))

	return &GenerateResult{
		Artifact:    artifact,
		Format:      format,
		RecordCount: layout.RecordCount(),
		PageCount:   layout.PageCount(),
	}, nil
}

// Export generates labels and saves them to destination, or to the default
// output name of the format when destination is empty.
func (s *Service) Export(ctx context.Context, format printing.Format, destination string) (*ExportResult, error) {
	if s.artifacts == nil {
		return nil, fmt.Errorf("no artifact store is configured")
	}
	if destination == "" {
		destination = s.defaultName(format)
	}

	generated, err := s.Generate(ctx, format)
	if err != nil {
		return nil, err
	}

	saved, err := s.artifacts.Save(ctx, destination, generated.Artifact)
	if err != nil {
		return nil, fmt.Errorf("failed to save labels: %w", err)
	}

	return &ExportResult{
		GenerateResult: *generated,
		Location:       saved.Location,
		Size:           saved.Size,
		SavedAt:        saved.SavedAt,
	}, nil
}

// Submit appends one record built from form input. Values are trimmed and
// otherwise stored as given.
func (s *Service) Submit(ctx context.Context, input SubmitRecordInput) error {
	record := customer.NewRecord(input.FullName, input.Phone, input.Address, input.PostalCode)
	if err := s.records.Append(ctx, record); err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func (s *Service) defaultName(format printing.Format) string {
	if name, ok := s.config.OutputNames[format]; ok && name != "" {
		return name
	}
	return "customer_labels" + format.Extension()
}
