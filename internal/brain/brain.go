// Package brain tracks the set of notes registered with mdb add.
//
// The set is persisted as a single TOML document:
//
//	entries = ["/home/me/notes/a.md", "/home/me/notes/b.md"]
//
// Every operation loads the record fresh from disk, mutates it in memory and
// writes the whole document back.
package brain

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/AlexanderBrevig/mdb/internal/atomicfile"
	"github.com/AlexanderBrevig/mdb/internal/logging"
	"github.com/AlexanderBrevig/mdb/internal/mdberr"
)

// Record is the set of tracked note paths.
type Record struct {
	entries map[string]struct{}
}

// NewRecord returns a record holding paths.
func NewRecord(paths ...string) *Record {
	r := &Record{entries: make(map[string]struct{}, len(paths))}
	for _, p := range paths {
		r.Add(p)
	}
	return r
}

// Add inserts path. Adding a tracked path is a no-op.
func (r *Record) Add(path string) {
	r.entries[path] = struct{}{}
}

// Remove drops path from the record.
func (r *Record) Remove(path string) {
	delete(r.entries, path)
}

// Has reports whether path is tracked.
func (r *Record) Has(path string) bool {
	_, ok := r.entries[path]
	return ok
}

// Len returns the number of tracked paths.
func (r *Record) Len() int {
	return len(r.entries)
}

// Paths returns the tracked paths in lexical order.
func (r *Record) Paths() []string {
	out := make([]string, 0, len(r.entries))
	for p := range r.entries {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// persistedRecord is the on-disk document.
type persistedRecord struct {
	Entries []string `toml:"entries"`
}

// Tracker reads and writes the record file.
type Tracker struct {
	path string
	log  logrus.FieldLogger
}

// New creates a Tracker for the record file at path. path must already be
// expanded.
func New(path string, log logrus.FieldLogger) *Tracker {
	if log == nil {
		log = logging.Discard()
	}
	return &Tracker{path: path, log: log.WithField("data", path)}
}

// Path returns the record file location.
func (t *Tracker) Path() string {
	return t.path
}

// Load reads the record, creating an empty file (and its directory) when
// none exists. An empty file yields an empty record.
func (t *Tracker) Load() (*Record, error) {
	t.log.Debug("brain load")

	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return nil, mdberr.IO(err, "failed to create data directory")
	}

	f, err := os.OpenFile(t.path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, mdberr.IO(err, "failed to open %s", t.path)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, mdberr.IO(err, "failed to read %s", t.path)
	}

	record := NewRecord()
	if len(bytes.TrimSpace(data)) == 0 {
		return record, nil
	}

	var doc persistedRecord
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, mdberr.IO(err, "failed to parse %s", t.path)
	}
	for _, p := range doc.Entries {
		record.Add(p)
	}
	t.log.WithField("entries", record.Len()).Debug("brain loaded")
	return record, nil
}

// Save overwrites the record file with record. Creating the directory is
// best-effort; the write itself must succeed.
func (t *Tracker) Save(record *Record) error {
	_ = os.MkdirAll(filepath.Dir(t.path), 0o755)

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(persistedRecord{Entries: record.Paths()}); err != nil {
		return mdberr.IO(err, "failed to encode record")
	}

	if err := atomicfile.WriteFile(t.path, buf.Bytes(), 0); err != nil {
		return mdberr.IO(err, "failed to write %s", t.path)
	}
	t.log.WithField("entries", record.Len()).Debug("brain saved")
	return nil
}

// Add tracks path, which must exist. It returns path as stored.
func (t *Tracker) Add(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", mdberr.NotFound("file %s not found", path)
		}
		return "", mdberr.IO(err, "failed to stat %s", path)
	}
	t.log.WithField("path", path).Info("brain add")

	err := t.update(func(record *Record) error {
		record.Add(path)
		return nil
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// List returns the tracked paths in lexical order.
func (t *Tracker) List() ([]string, error) {
	t.log.Info("brain list")
	record, err := t.Load()
	if err != nil {
		return nil, err
	}
	return record.Paths(), nil
}

// Clean drops every tracked path whose file no longer exists and returns
// how many were removed.
func (t *Tracker) Clean() (int, error) {
	removed := 0
	err := t.update(func(record *Record) error {
		for _, p := range record.Paths() {
			if _, err := os.Stat(p); os.IsNotExist(err) {
				record.Remove(p)
				removed++
				t.log.WithField("path", p).Info("brain clean: dropping missing note")
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// update runs a load-modify-save cycle while holding the record lock.
func (t *Tracker) update(fn func(*Record) error) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return mdberr.IO(err, "failed to create data directory")
	}

	lock, err := acquireLock(t.path + ".lock")
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			t.log.WithError(err).Warn("failed to release brain lock")
		}
	}()

	record, err := t.Load()
	if err != nil {
		return err
	}
	if err := fn(record); err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return t.Save(record)
}
