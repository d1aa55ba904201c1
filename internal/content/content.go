package content

import (
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"

	"demodash/internal/errors"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Section is one rendered narrative block of the dashboard
type Section struct {
	Name  string
	HTML  template.HTML
	Found bool
}

// Store resolves markdown narrative sections and asset images from disk.
// Both degrade gracefully: a missing file becomes a visible notice, never a
// failure.
type Store struct {
	contentDir string
	assetsDir  string
}

// NewStore creates a content store over the content and assets directories
func NewStore(contentDir, assetsDir string) *Store {
	return &Store{contentDir: contentDir, assetsDir: assetsDir}
}

// Section loads <name>.md from the content directory and renders it to HTML
func (s *Store) Section(name string) Section {
	path := filepath.Join(s.contentDir, name+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[Content] Section %s not found at %s", name, path)
		return Section{Name: name, Found: false}
	}
	return Section{Name: name, HTML: renderMarkdown(data), Found: true}
}

// Sections loads several sections at once, preserving order
func (s *Store) Sections(names ...string) []Section {
	sections := make([]Section, len(names))
	for i, name := range names {
		sections[i] = s.Section(name)
	}
	return sections
}

// ImagePath resolves an asset image by bare filename. Names that escape the
// assets directory are rejected.
func (s *Store) ImagePath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", errors.InvalidInput("invalid asset name: " + name)
	}
	path := filepath.Join(s.assetsDir, name)
	if _, err := os.Stat(path); err != nil {
		return "", errors.NotFound("image " + name)
	}
	return path, nil
}

// ImageExists reports whether an asset image is present
func (s *Store) ImageExists(name string) bool {
	_, err := s.ImagePath(name)
	return err == nil
}

func renderMarkdown(data []byte) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return template.HTML(markdown.ToHTML(data, p, renderer))
}
