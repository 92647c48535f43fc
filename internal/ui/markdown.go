package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// MarkdownRenderMargin is the left margin used for terminal markdown rendering.
const MarkdownRenderMargin = 2

// RenderMarkdown renders a template or note body for the terminal, wrapped
// at width.
func RenderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(markdownStyle()),
		glamour.WithWordWrap(width),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(rendered, "\n") + "\n", nil
}

// markdownStyle is glamour's dark style with plain "#" heading prefixes in
// the accent color, so a rendered template still reads like its source.
func markdownStyle() ansi.StyleConfig {
	style := styles.DarkStyleConfig

	style.Document.Margin = uintPtr(MarkdownRenderMargin)
	style.Heading.Bold = boolPtr(true)
	style.Heading.Color = nil
	if color, ok := AccentColor(); ok {
		style.Heading.Color = stringPtr(color)
	}

	for level, h := range []*ansi.StyleBlock{&style.H1, &style.H2, &style.H3, &style.H4, &style.H5, &style.H6} {
		h.Prefix = strings.Repeat("#", level+1) + " "
		h.Suffix = ""
		h.Color = nil
		h.BackgroundColor = nil
	}
	return style
}

func boolPtr(v bool) *bool { return &v }

func stringPtr(v string) *string { return &v }

func uintPtr(v uint) *uint { return &v }
