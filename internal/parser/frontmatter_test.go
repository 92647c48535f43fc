package parser

import "testing"

func TestParseFrontmatter(t *testing.T) {
	fm, err := ParseFrontmatter("---\ntitle: Standup\ncount: 3\n---\nbody\n")
	if err != nil {
		t.Fatalf("ParseFrontmatter: %v", err)
	}
	if fm == nil {
		t.Fatal("expected frontmatter")
	}
	if fm.String("title") != "Standup" {
		t.Errorf("title = %q", fm.String("title"))
	}
	if fm.String("count") != "" {
		t.Errorf("non-string field should read as empty")
	}
	if fm.EndLine != 4 {
		t.Errorf("EndLine = %d, want 4", fm.EndLine)
	}
}

func TestParseFrontmatter_Absent(t *testing.T) {
	for _, content := range []string{"# no frontmatter\n", "---\nunclosed: true\n"} {
		fm, err := ParseFrontmatter(content)
		if err != nil || fm != nil {
			t.Fatalf("ParseFrontmatter(%q) = %+v, %v", content, fm, err)
		}
	}
}

func TestParseFrontmatter_InvalidYAML(t *testing.T) {
	if _, err := ParseFrontmatter("---\ntags: [unclosed\n---\n"); err == nil {
		t.Fatal("expected YAML error")
	}
}

func TestBody(t *testing.T) {
	body, start := Body("---\na: 1\n---\n# Title\n")
	if body != "# Title\n" || start != 4 {
		t.Fatalf("Body = %q, %d", body, start)
	}

	body, start = Body("# Title\n")
	if body != "# Title\n" || start != 1 {
		t.Fatalf("Body without frontmatter = %q, %d", body, start)
	}
}
