package printing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateStore_Embedded(t *testing.T) {
	store := newTemplates(t)

	for _, name := range []string{TemplateGrid, TemplateStacked} {
		content, err := store.Get(name)
		require.NoError(t, err, name)
		assert.Contains(t, content, "invoice-box", name)
	}
}

func TestTemplateStore_Unknown(t *testing.T) {
	_, err := newTemplates(t).Get("missing.html")
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)
}

func TestTemplateStore_ExternalOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TemplateGrid), []byte("<p>custom</p>"), 0o644))

	store, err := NewTemplateStore(&TemplateStoreConfig{ExternalDir: dir})
	require.NoError(t, err)

	grid, err := store.Get(TemplateGrid)
	require.NoError(t, err)
	assert.Equal(t, "<p>custom</p>", grid)

	// Not overridden, falls back to the embedded copy
	stacked, err := store.Get(TemplateStacked)
	require.NoError(t, err)
	assert.Contains(t, stacked, "invoice-box")
}
