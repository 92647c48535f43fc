package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading represents a markdown heading.
type Heading struct {
	Level int
	Text  string
	Line  int
}

// ExtractHeadings extracts headings from markdown content using goldmark.
// startLine is the 1-indexed line content starts on.
func ExtractHeadings(content string, startLine int) []Heading {
	var headings []Heading

	source := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))
	lineStarts := computeLineStarts(content)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		headingText := strings.TrimSpace(inlineText(heading, source))
		if headingText == "" {
			return ast.WalkSkipChildren, nil
		}

		line := startLine
		if heading.Lines().Len() > 0 {
			line = startLine + offsetToLine(lineStarts, heading.Lines().At(0).Start)
		}

		headings = append(headings, Heading{
			Level: heading.Level,
			Text:  headingText,
			Line:  line,
		})
		return ast.WalkSkipChildren, nil
	})

	return headings
}

// Title returns a display title for a note: the frontmatter title when set,
// else the first level-1 heading, else the first heading of any level.
func Title(content string) string {
	if fm, err := ParseFrontmatter(content); err == nil {
		if title := fm.String("title"); title != "" {
			return title
		}
	}

	body, start := Body(content)
	headings := ExtractHeadings(body, start)
	for _, h := range headings {
		if h.Level == 1 {
			return h.Text
		}
	}
	if len(headings) > 0 {
		return headings[0].Text
	}
	return ""
}

// ReadTitle reads the note at path and returns its Title.
func ReadTitle(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return Title(string(data)), nil
}

// inlineText concatenates the text segments below n, descending into
// emphasis, links and code spans.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(source))
			if c.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		default:
			b.WriteString(inlineText(child, source))
		}
	}
	return b.String()
}

// computeLineStarts computes the byte offset of each line start.
func computeLineStarts(content string) []int {
	starts := []int{0}
	for i, c := range content {
		if c == '\n' && i+1 < len(content) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// offsetToLine converts a byte offset to a 0-indexed line number.
func offsetToLine(lineStarts []int, offset int) int {
	for i := len(lineStarts) - 1; i >= 0; i-- {
		if lineStarts[i] <= offset {
			return i
		}
	}
	return 0
}
