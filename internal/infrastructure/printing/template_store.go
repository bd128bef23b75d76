package printing

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names known to the store
const (
	TemplateGrid    = "labels_grid.html"
	TemplateStacked = "labels_stacked.html"
)

// TemplateStore manages the label templates.
// It supports loading from an external directory (for customization)
// with fallback to embedded templates.
type TemplateStore struct {
	externalDir string
	templates   map[string]string
}

// TemplateStoreConfig configures the template store
type TemplateStoreConfig struct {
	// ExternalDir is the directory to load templates from.
	// Files missing there fall back to the embedded copies.
	ExternalDir string
}

// NewTemplateStore creates a new template store
func NewTemplateStore(config *TemplateStoreConfig) (*TemplateStore, error) {
	store := &TemplateStore{}

	if config != nil && config.ExternalDir != "" {
		store.externalDir = config.ExternalDir
	}

	if err := store.loadTemplates(); err != nil {
		return nil, err
	}

	return store, nil
}

// loadTemplates loads all templates from external dir or embedded
func (s *TemplateStore) loadTemplates() error {
	names := []string{TemplateGrid, TemplateStacked}
	s.templates = make(map[string]string, len(names))
	for _, name := range names {
		content, err := s.loadTemplateContent(name)
		if err != nil {
			return fmt.Errorf("failed to load template %s: %w", name, err)
		}
		s.templates[name] = content
	}
	return nil
}

// loadTemplateContent loads template content from external dir or embedded
func (s *TemplateStore) loadTemplateContent(name string) (string, error) {
	if s.externalDir != "" {
		content, err := os.ReadFile(filepath.Join(s.externalDir, name))
		if err == nil {
			return string(content), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}

	content, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Get returns the content of a named template
func (s *TemplateStore) Get(name string) (string, error) {
	content, ok := s.templates[name]
	if !ok {
		return "", NewRenderError(ErrCodeInvalidHTML, "unknown template: "+name, nil)
	}
	return content, nil
}
