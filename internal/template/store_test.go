package template

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexanderBrevig/mdb/internal/mdberr"
)

func TestStoreLookup(t *testing.T) {
	dir := t.TempDir()
	store := NewStore([]Template{
		{ID: "default", Content: strPtr("d")},
		{ID: "meeting"},
	}, dir)

	if tmpl, ok := store.Default(); !ok || tmpl.ID != "default" {
		t.Fatalf("Default() = %v, %v", tmpl, ok)
	}
	if tmpl, ok := store.Get("meeting"); !ok || tmpl.ID != "meeting" {
		t.Fatalf("Get(meeting) = %v, %v", tmpl, ok)
	}
	if _, ok := store.Get("nope"); ok {
		t.Fatal("Get(nope) should miss")
	}
	if got := len(store.All()); got != 2 {
		t.Fatalf("All() len = %d", got)
	}
}

func TestStoreMissingDefault(t *testing.T) {
	store := NewStore([]Template{{ID: "meeting"}}, t.TempDir())
	if _, ok := store.Default(); ok {
		t.Fatal("expected no default template")
	}
}

func TestStoreFileExists(t *testing.T) {
	dir := t.TempDir()
	store := NewStore([]Template{{ID: "inline", Content: strPtr("x")}}, dir)

	if store.FileExists("weekly") {
		t.Fatal("weekly body should not exist yet")
	}
	if err := os.WriteFile(filepath.Join(dir, "weekly.md"), []byte("w"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !store.FileExists("weekly") {
		t.Fatal("weekly body should exist")
	}
	if store.FileExists("") {
		t.Fatal("empty id never exists")
	}

	if !store.Known("weekly") || !store.Known("inline") {
		t.Fatal("Known should accept body files and configured ids")
	}
	if store.Known("other") {
		t.Fatal("Known(other) should be false")
	}
	if want := filepath.Join(dir, "weekly.md"); store.BodyPath("weekly") != want {
		t.Fatalf("BodyPath = %q, want %q", store.BodyPath("weekly"), want)
	}
}

func TestStoreLookup_BodyFileOnly(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "weekly.md"), []byte("w $NAME"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewStore([]Template{{ID: "default", Content: strPtr("d")}}, dir)

	tmpl, ok := store.Lookup("weekly")
	if !ok {
		t.Fatal("Lookup(weekly) should find the body file")
	}
	if tmpl.ID != "weekly" || tmpl.Name != nil || tmpl.Content != nil {
		t.Fatalf("Lookup(weekly) = %+v", tmpl)
	}
	body, err := store.Body(tmpl)
	if err != nil || body != "w $NAME" {
		t.Fatalf("Body = %q, %v", body, err)
	}

	if tmpl, ok := store.Lookup("default"); !ok || tmpl.Content == nil {
		t.Fatalf("Lookup(default) = %+v, %v", tmpl, ok)
	}
	if _, ok := store.Lookup("ghost"); ok {
		t.Fatal("Lookup(ghost) should miss")
	}
}

func TestStoreBody_Missing(t *testing.T) {
	store := NewStore(nil, t.TempDir())
	if _, err := store.Body(&Template{ID: "ghost"}); !errors.Is(err, mdberr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
