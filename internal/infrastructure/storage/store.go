// Package storage persists rendered label artifacts.
package storage

import (
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/labelprint/backend/internal/domain/printing"
)

// ErrInvalidKey is returned for empty keys and keys that escape the store root
var ErrInvalidKey = errors.New("invalid storage key")

// ArtifactStore saves a rendered artifact under a key
type ArtifactStore interface {
	Save(ctx context.Context, key string, artifact *printing.Artifact) (*SaveResult, error)
}

// SaveResult describes a stored artifact
type SaveResult struct {
	Key         string
	Location    string // file path or s3:// URL
	Size        int64
	ContentType string
	SavedAt     time.Time
}

// cleanKey normalizes a relative slash-separated key. Keys that are empty or
// climb above the root with ".." are rejected.
func cleanKey(key string) (string, error) {
	key = strings.TrimSpace(strings.ReplaceAll(key, `\`, "/"))
	if key == "" {
		return "", ErrInvalidKey
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", ErrInvalidKey
		}
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+key), "/")
	if cleaned == "" {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
