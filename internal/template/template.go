// Package template provides note templates, variable substitution, and
// rendering of templates into note files.
package template

import (
	"path/filepath"
	"strings"
	"time"
)

// DateLayout is the format used for $DATE.
const DateLayout = "2006-01-02"

// Template describes how a new note is named and what it initially contains.
type Template struct {
	// ID is the unique, non-empty template id.
	ID string

	// Dir is the target directory for new notes. Empty means the caller's
	// directory. Supports ~ expansion.
	Dir string

	// Content is the inline body. When nil the body is read from <id>.md
	// in the templates directory.
	Content *string

	// Name generates a file name when none is given. Nil means the
	// template cannot be rendered without an explicit name.
	Name NameSource

	// Slug slugifies the resolved file name.
	Slug bool
}

// NameSource produces a note file name. It is either TextName or ExecName.
type NameSource interface {
	nameSource()
}

// TextName is a literal file name.
type TextName struct {
	Text string
}

// ExecName runs a command and uses its standard output as the file name.
type ExecName struct {
	Run  string
	Args []string
	// Trim removes trailing whitespace and newlines from the output.
	Trim bool
}

func (TextName) nameSource() {}
func (ExecName) nameSource() {}

// Variables holds the values substituted into template bodies.
type Variables struct {
	// Name is the note name ($NAME).
	Name string
	// Date is today's date, YYYY-MM-DD ($DATE).
	Date string
	// Path is the target location ($PATH); its last element is $PWD.
	Path string
}

// NewVariables creates Variables for name and path dated at now (UTC).
func NewVariables(name, path string, now time.Time) *Variables {
	return &Variables{
		Name: name,
		Date: now.UTC().Format(DateLayout),
		Path: path,
	}
}

// Apply substitutes $NAME, $DATE, $PWD and $PATH in content, in that order.
// Each token is replaced globally in a single pass; substituted values are
// not scanned again for earlier tokens.
func Apply(content string, vars *Variables) string {
	if content == "" || vars == nil {
		return content
	}

	content = strings.ReplaceAll(content, "$NAME", vars.Name)
	content = strings.ReplaceAll(content, "$DATE", vars.Date)
	content = strings.ReplaceAll(content, "$PWD", lastElem(vars.Path))
	content = strings.ReplaceAll(content, "$PATH", vars.Path)
	return content
}

// Inject is Apply with variables built from name, path and the current time.
func Inject(content, name, path string) string {
	return Apply(content, NewVariables(name, path, time.Now()))
}

func lastElem(p string) string {
	if p == "" {
		return ""
	}
	base := filepath.Base(p)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return base
}
