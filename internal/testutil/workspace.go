// Package testutil provides reusable helpers for mdb tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Workspace is a temporary layout of the directories mdb touches: a notes
// directory to run in, a config directory holding templates, and a data
// directory for the record file.
type Workspace struct {
	Root      string
	Notes     string
	Config    string
	Templates string
	Data      string

	t      *testing.T
	files  map[string]string
	bodies map[string]string
}

// NewWorkspace creates a workspace builder. Call Build to create it on disk.
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()
	return &Workspace{
		t:      t,
		files:  make(map[string]string),
		bodies: make(map[string]string),
	}
}

// WithNote adds a file under the notes directory.
func (w *Workspace) WithNote(relPath, content string) *Workspace {
	w.files[relPath] = content
	return w
}

// WithTemplateBody adds <id>.md to the templates directory.
func (w *Workspace) WithTemplateBody(id, content string) *Workspace {
	w.bodies[id] = content
	return w
}

// Build creates the directories and files.
func (w *Workspace) Build() *Workspace {
	w.t.Helper()

	w.Root = w.t.TempDir()
	w.Notes = filepath.Join(w.Root, "notes")
	w.Config = filepath.Join(w.Root, "config", "mdb")
	w.Templates = w.Config
	w.Data = filepath.Join(w.Root, "share", "mdb", "brain.toml")

	for _, dir := range []string{w.Notes, w.Config} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			w.t.Fatalf("failed to create %s: %v", dir, err)
		}
	}
	for rel, content := range w.files {
		w.write(filepath.Join(w.Notes, rel), content)
	}
	for id, content := range w.bodies {
		w.write(filepath.Join(w.Templates, id+".md"), content)
	}
	return w
}

// WriteConfig writes config.toml into the config directory and returns its
// path.
func (w *Workspace) WriteConfig(content string) string {
	w.t.Helper()
	path := filepath.Join(w.Config, "config.toml")
	w.write(path, content)
	return path
}

// NotePath returns the absolute path of a file in the notes directory.
func (w *Workspace) NotePath(relPath string) string {
	return filepath.Join(w.Notes, relPath)
}

// WorkDir returns a working directory lookup pinned to the notes directory.
func (w *Workspace) WorkDir() func() (string, error) {
	return func() (string, error) { return w.Notes, nil }
}

func (w *Workspace) write(path, content string) {
	w.t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		w.t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		w.t.Fatalf("failed to write %s: %v", path, err)
	}
}
