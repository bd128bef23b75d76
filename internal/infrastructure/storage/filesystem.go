package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/labelprint/backend/internal/domain/printing"
	"go.uber.org/zap"
)

const (
	defaultFilePermissions = 0644
	defaultDirPermissions  = 0755
)

// FileSystemStore writes artifacts below a base directory. Absolute keys are
// written where they point, which is how an explicit --out path is honoured.
type FileSystemStore struct {
	baseDir string
	logger  *zap.Logger
}

// FileSystemOption configures a FileSystemStore
type FileSystemOption func(*FileSystemStore)

// WithFileSystemLogger sets a custom logger
func WithFileSystemLogger(logger *zap.Logger) FileSystemOption {
	return func(s *FileSystemStore) {
		s.logger = logger
	}
}

// NewFileSystemStore creates a store rooted at baseDir ("." when empty)
func NewFileSystemStore(baseDir string, opts ...FileSystemOption) *FileSystemStore {
	if baseDir == "" {
		baseDir = "."
	}
	s := &FileSystemStore{
		baseDir: baseDir,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save writes the artifact atomically, creating parent directories
func (s *FileSystemStore) Save(ctx context.Context, key string, artifact *printing.Artifact) (*SaveResult, error) {
	if artifact == nil {
		return nil, fmt.Errorf("artifact is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(target), defaultDirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".artifact-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(artifact.Data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := os.Chmod(tmpName, defaultFilePermissions); err != nil {
		return nil, fmt.Errorf("failed to set artifact permissions: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return nil, fmt.Errorf("failed to move artifact into place: %w", err)
	}

	s.logger.Info("artifact saved",
		zap.String("path", target),
		zap.Int("bytes", artifact.Size()))

	return &SaveResult{
		Key:         key,
		Location:    target,
		Size:        int64(artifact.Size()),
		ContentType: artifact.ContentType(),
		SavedAt:     time.Now(),
	}, nil
}

func (s *FileSystemStore) resolve(key string) (string, error) {
	if filepath.IsAbs(key) {
		return filepath.Clean(key), nil
	}
	cleaned, err := cleanKey(key)
	if err != nil {
		return "", fmt.Errorf("%w: %q", err, key)
	}
	return filepath.Join(s.baseDir, filepath.FromSlash(cleaned)), nil
}

// BaseDir returns the root directory
func (s *FileSystemStore) BaseDir() string {
	return s.baseDir
}

// Ensure FileSystemStore implements ArtifactStore
var _ ArtifactStore = (*FileSystemStore)(nil)
