package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractHeadings(t *testing.T) {
	content := "# Weekly *sync*\n\nintro\n\n## Agenda\n\ntext\n\n### `code` item\n"

	headings := ExtractHeadings(content, 1)
	if len(headings) != 3 {
		t.Fatalf("expected 3 headings, got %d: %+v", len(headings), headings)
	}

	want := []Heading{
		{Level: 1, Text: "Weekly sync", Line: 1},
		{Level: 2, Text: "Agenda", Line: 5},
		{Level: 3, Text: "code item", Line: 9},
	}
	for i, h := range want {
		if headings[i] != h {
			t.Errorf("heading %d = %+v, want %+v", i, headings[i], h)
		}
	}
}

func TestExtractHeadings_StartLineOffset(t *testing.T) {
	headings := ExtractHeadings("intro\n\n# Title\n", 5)
	if len(headings) != 1 || headings[0].Line != 7 {
		t.Fatalf("headings = %+v, want Title on line 7", headings)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "first h1", content: "intro\n\n## Sub\n\n# Main\n", want: "Main"},
		{name: "falls back to any heading", content: "## Only sub\n", want: "Only sub"},
		{name: "no headings", content: "just text\n", want: ""},
		{name: "empty", content: "", want: ""},
		{
			name:    "frontmatter title wins",
			content: "---\ntitle: From FM\n---\n# Heading\n",
			want:    "From FM",
		},
		{
			name:    "frontmatter without title is skipped",
			content: "---\ntags: [a]\n---\n# Heading\n",
			want:    "Heading",
		},
		{
			name:    "unclosed frontmatter",
			content: "---\ntitle: x\n# Heading\n",
			want:    "Heading",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.content); got != tt.want {
				t.Fatalf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "n.md")
	if err := os.WriteFile(path, []byte("# Hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadTitle(path)
	if err != nil || got != "Hello" {
		t.Fatalf("ReadTitle = %q, %v", got, err)
	}
	if _, err := ReadTitle(filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
