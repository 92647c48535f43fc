// Package parser reads the parts of a markdown note that mdb displays.
package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the YAML block at the top of a note.
type Frontmatter struct {
	// Fields are the decoded top-level keys.
	Fields map[string]interface{}

	// Raw is the YAML between the delimiters.
	Raw string

	// EndLine is the 1-indexed line of the closing delimiter.
	EndLine int
}

// FrontmatterBounds returns the opening and closing frontmatter line indices.
// It only detects frontmatter when the first line is '---'.
// If frontmatter is present but unclosed, endLine is -1.
func FrontmatterBounds(lines []string) (startLine int, endLine int, ok bool) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return 0, -1, false
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return 0, i, true
		}
	}

	return 0, -1, true
}

// ParseFrontmatter parses YAML frontmatter from markdown content.
// Returns nil if no closed frontmatter block is found.
func ParseFrontmatter(content string) (*Frontmatter, error) {
	lines := strings.Split(content, "\n")

	_, endLine, ok := FrontmatterBounds(lines)
	if !ok || endLine == -1 {
		return nil, nil
	}

	raw := strings.Join(lines[1:endLine], "\n")
	var fields map[string]interface{}
	if err := yaml.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter as YAML: %w", err)
	}
	if fields == nil {
		fields = map[string]interface{}{}
	}

	return &Frontmatter{
		Fields:  fields,
		Raw:     raw,
		EndLine: endLine + 1,
	}, nil
}

// Body returns content without its frontmatter and the 1-indexed line the
// body starts on.
func Body(content string) (string, int) {
	lines := strings.Split(content, "\n")
	_, endLine, ok := FrontmatterBounds(lines)
	if !ok || endLine == -1 {
		return content, 1
	}
	return strings.Join(lines[endLine+1:], "\n"), endLine + 2
}

// String returns a string field, or "" when absent or not a string.
func (f *Frontmatter) String(key string) string {
	if f == nil {
		return ""
	}
	s, _ := f.Fields[key].(string)
	return strings.TrimSpace(s)
}
