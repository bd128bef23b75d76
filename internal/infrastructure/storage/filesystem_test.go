package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/labelprint/backend/internal/domain/printing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func htmlArtifact(body string) *printing.Artifact {
	return &printing.Artifact{Format: printing.FormatHTML, Data: []byte(body), PageCount: 1}
}

func TestFileSystemStore_SaveRelative(t *testing.T) {
	dir := t.TempDir()
	store := NewFileSystemStore(dir)

	result, err := store.Save(context.Background(), "out/customer_labels.html", htmlArtifact("<html></html>"))
	require.NoError(t, err)

	want := filepath.Join(dir, "out", "customer_labels.html")
	assert.Equal(t, want, result.Location)
	assert.Equal(t, int64(len("<html></html>")), result.Size)
	assert.Equal(t, "text/html; charset=utf-8", result.ContentType)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))

	info, err := os.Stat(want)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(defaultFilePermissions), info.Mode().Perm())
}

func TestFileSystemStore_SaveAbsolute(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "labels.pdf")
	store := NewFileSystemStore("/nonexistent-base")

	result, err := store.Save(context.Background(), target, &printing.Artifact{Format: printing.FormatPDF, Data: []byte("%PDF")})
	require.NoError(t, err)
	assert.Equal(t, target, result.Location)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.FileExists(t, target)
}

func TestFileSystemStore_Overwrites(t *testing.T) {
	dir := t.TempDir()
	store := NewFileSystemStore(dir)

	_, err := store.Save(context.Background(), "labels.html", htmlArtifact("first"))
	require.NoError(t, err)
	_, err = store.Save(context.Background(), "labels.html", htmlArtifact("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "labels.html"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFileSystemStore_RejectsTraversal(t *testing.T) {
	store := NewFileSystemStore(t.TempDir())

	_, err := store.Save(context.Background(), "../escape.html", htmlArtifact("x"))
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = store.Save(context.Background(), "", htmlArtifact("x"))
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestFileSystemStore_Errors(t *testing.T) {
	dir := t.TempDir()
	store := NewFileSystemStore(dir)

	_, err := store.Save(context.Background(), "labels.html", nil)
	require.Error(t, err)

	// A regular file where the directory should be
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blocked"), []byte("x"), 0o644))
	_, err = store.Save(context.Background(), "blocked/labels.html", htmlArtifact("x"))
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Save(ctx, "labels.html", htmlArtifact("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewFileSystemStore_DefaultDir(t *testing.T) {
	assert.Equal(t, ".", NewFileSystemStore("").BaseDir())
}
