package template

import (
	"os"
	"path/filepath"

	"github.com/AlexanderBrevig/mdb/internal/mdberr"
)

// DefaultID is the id of the template used when none is named.
const DefaultID = "default"

// bodyExt is the extension of template body files and of notes.
const bodyExt = ".md"

// Store holds the configured templates and knows where their body files live.
type Store struct {
	templates []Template
	dir       string
}

// NewStore creates a Store over templates, with body files under dir.
func NewStore(templates []Template, dir string) *Store {
	return &Store{templates: templates, dir: dir}
}

// Dir returns the directory holding template body files.
func (s *Store) Dir() string {
	return s.dir
}

// All returns the templates in declaration order.
func (s *Store) All() []Template {
	return s.templates
}

// Get returns the template with the given id.
func (s *Store) Get(id string) (*Template, bool) {
	for i := range s.templates {
		if s.templates[i].ID == id {
			return &s.templates[i], true
		}
	}
	return nil, false
}

// Lookup returns the configured template id, or a bare template backed
// only by its body file when id is not configured. Note creation goes
// through Get; Lookup serves listing and display.
func (s *Store) Lookup(id string) (*Template, bool) {
	if tmpl, ok := s.Get(id); ok {
		return tmpl, true
	}
	if s.FileExists(id) {
		return &Template{ID: id}, true
	}
	return nil, false
}

// Default returns the template with id "default".
func (s *Store) Default() (*Template, bool) {
	return s.Get(DefaultID)
}

// BodyPath returns the path of the body file for template id.
func (s *Store) BodyPath(id string) string {
	return filepath.Join(s.dir, id+bodyExt)
}

// FileExists reports whether a body file exists for id.
func (s *Store) FileExists(id string) bool {
	if id == "" {
		return false
	}
	_, err := os.Stat(s.BodyPath(id))
	return err == nil
}

// Known reports whether id names a configured template or a body file.
func (s *Store) Known(id string) bool {
	if _, ok := s.Get(id); ok {
		return true
	}
	return s.FileExists(id)
}

// Body returns the unrendered body of tmpl: its inline content, or the
// body file.
func (s *Store) Body(tmpl *Template) (string, error) {
	if tmpl.Content != nil {
		return *tmpl.Content, nil
	}

	path := s.BodyPath(tmpl.ID)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", mdberr.NotFound("template %s not found", tmpl.ID)
		}
		return "", mdberr.IO(err, "failed to read template %s", path)
	}
	return string(data), nil
}
