package ui

import (
	"fmt"
	"strings"
)

// EditorURL builds a URL that opens absPath in editor when clicked in a
// terminal that supports OSC 8 links.
func EditorURL(editor, absPath string) string {
	e := strings.ToLower(editor)

	switch {
	case strings.Contains(e, "cursor"):
		return fmt.Sprintf("cursor://file%s", absPath)
	case strings.Contains(e, "code") || strings.Contains(e, "vscode"):
		return fmt.Sprintf("vscode://file%s", absPath)
	case strings.Contains(e, "subl") || strings.Contains(e, "sublime"):
		return fmt.Sprintf("subl://open?url=file://%s", absPath)
	case strings.Contains(e, "zed"):
		return fmt.Sprintf("zed://file%s", absPath)
	default:
		return fmt.Sprintf("file://%s", absPath)
	}
}

// Hyperlink wraps text in an OSC 8 escape pointing at url.
func Hyperlink(url, text string) string {
	return fmt.Sprintf("\x1b]8;;%s\x07%s\x1b]8;;\x07", url, text)
}
