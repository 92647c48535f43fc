// Package slugs turns free-form note names into file-system friendly slugs.
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// Component slugifies a single name component. A trailing ".md" is dropped
// first. Names gosimple/slug reduces to nothing fall back to a lowercased,
// dash-joined form so a note name never vanishes entirely.
func Component(s string) string {
	s = strings.TrimSuffix(s, ".md")
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.Join(strings.Fields(s), "-"))
	}
	return slugged
}

// Name slugifies each "/"-separated component of a note name, so
// "Work/Team Sync" becomes "work/team-sync". Backslashes count as separators.
func Name(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.TrimSuffix(name, ".md")

	parts := strings.Split(name, "/")
	out := parts[:0]
	for _, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, Component(part))
	}
	return strings.Join(out, "/")
}
