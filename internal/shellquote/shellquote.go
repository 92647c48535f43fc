// Package shellquote builds POSIX shell command lines.
package shellquote

import "strings"

// Quote returns s as a single-quoted shell word. Embedded single quotes
// become '\''.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		if r == '\'' {
			b.WriteString(`'\''`)
			continue
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

// Append returns command followed by each arg quoted as its own word.
// command itself is left as written so it may carry flags.
func Append(command string, args ...string) string {
	words := make([]string, 0, len(args)+1)
	words = append(words, strings.TrimSpace(command))
	for _, a := range args {
		words = append(words, Quote(a))
	}
	return strings.Join(words, " ")
}
