package testutil

import (
	"os"
	"strings"
)

// ReadNote returns the content of a file in the notes directory.
func (w *Workspace) ReadNote(relPath string) string {
	w.t.Helper()
	data, err := os.ReadFile(w.NotePath(relPath))
	if err != nil {
		w.t.Fatalf("failed to read note %s: %v", relPath, err)
	}
	return string(data)
}

// AssertNoteExists fails the test if the note does not exist.
func (w *Workspace) AssertNoteExists(relPath string) {
	w.t.Helper()
	if _, err := os.Stat(w.NotePath(relPath)); os.IsNotExist(err) {
		w.t.Errorf("expected note to exist: %s", relPath)
	}
}

// AssertNoteNotExists fails the test if the note exists.
func (w *Workspace) AssertNoteNotExists(relPath string) {
	w.t.Helper()
	if _, err := os.Stat(w.NotePath(relPath)); err == nil {
		w.t.Errorf("expected note to not exist: %s", relPath)
	}
}

// AssertNoteContent fails the test unless the note holds exactly want.
func (w *Workspace) AssertNoteContent(relPath, want string) {
	w.t.Helper()
	if got := w.ReadNote(relPath); got != want {
		w.t.Errorf("note %s = %q, want %q", relPath, got, want)
	}
}

// AssertNoteContains fails the test if the note does not contain substr.
func (w *Workspace) AssertNoteContains(relPath, substr string) {
	w.t.Helper()
	content := w.ReadNote(relPath)
	if !strings.Contains(content, substr) {
		w.t.Errorf("expected note %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertTracked fails the test unless the record file lists path.
func (w *Workspace) AssertTracked(path string) {
	w.t.Helper()
	data, err := os.ReadFile(w.Data)
	if err != nil {
		w.t.Fatalf("failed to read record: %v", err)
	}
	if !strings.Contains(string(data), path) {
		w.t.Errorf("expected record to track %s, got:\n%s", path, data)
	}
}
