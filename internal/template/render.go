package template

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"

	"github.com/AlexanderBrevig/mdb/internal/logging"
	"github.com/AlexanderBrevig/mdb/internal/mdberr"
	"github.com/AlexanderBrevig/mdb/internal/slugs"
)

// Renderer writes templates out as note files.
type Renderer struct {
	store *Store
	log   logrus.FieldLogger
	now   func() time.Time
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithLogger sets the logger used for rendering diagnostics.
func WithLogger(log logrus.FieldLogger) RendererOption {
	return func(r *Renderer) {
		if log != nil {
			r.log = log
		}
	}
}

// WithClock sets the clock used for $DATE.
func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRenderer creates a Renderer that reads template bodies through store.
func NewRenderer(store *Store, opts ...RendererOption) *Renderer {
	r := &Renderer{
		store: store,
		log:   logging.Discard(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderToDefaultName renders tmpl using the file name produced by its name
// source. Templates without a name source fail with a not-found error before
// anything is written.
func (r *Renderer) RenderToDefaultName(ctx context.Context, tmpl *Template, targetDir string, overwrite bool) (string, error) {
	if tmpl.Name == nil {
		return "", mdberr.NotFound("template id %s does not create a name, and therefore a name is needed", tmpl.ID)
	}

	name, err := ResolveName(ctx, tmpl.Name)
	if err != nil {
		return "", err
	}
	r.log.WithFields(logrus.Fields{"template": tmpl.ID, "name": name}).Info("resolved default name")

	return r.Create(tmpl, targetDir, name, overwrite)
}

// RenderToExplicitName renders tmpl as a note called name.
func (r *Renderer) RenderToExplicitName(tmpl *Template, targetDir, name string, overwrite bool) (string, error) {
	return r.Create(tmpl, targetDir, name, overwrite)
}

// Create writes the rendered body of tmpl to <dir>/<name>.md and returns the
// path. dir is tmpl.Dir when set, targetDir otherwise; it must exist.
//
// An existing file is left untouched unless overwrite is set; its path is
// returned either way.
func (r *Renderer) Create(tmpl *Template, targetDir, name string, overwrite bool) (string, error) {
	content, err := r.store.Body(tmpl)
	if err != nil {
		return "", err
	}

	content = Apply(content, NewVariables(name, targetDir, r.now()))

	dir := targetDir
	if tmpl.Dir != "" {
		expanded, err := homedir.Expand(tmpl.Dir)
		if err != nil {
			return "", mdberr.IO(err, "template dir %s", tmpl.Dir)
		}
		if !exists(expanded) {
			return "", mdberr.NotFound("template dir %s does not exist", tmpl.Dir)
		}
		dir = expanded
	}
	if !exists(dir) {
		return "", mdberr.NotFound("target dir %s not found", dir)
	}

	if tmpl.Slug {
		name = slugs.Name(name)
	}
	if name == "" {
		return "", mdberr.InvalidInput("note name is empty for template %s", tmpl.ID)
	}

	path := WithNoteExt(filepath.Join(dir, name))
	log := r.log.WithFields(logrus.Fields{"template": tmpl.ID, "path": path})

	if exists(path) && !overwrite {
		log.Info("note exists, leaving it untouched")
		return path, nil
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", mdberr.IO(err, "failed to write %s", path)
	}
	log.WithField("overwrite", overwrite).Info("wrote note")
	return path, nil
}

// ResolveName evaluates a name source. Exec output is decoded as UTF-8 with
// invalid bytes replaced, and is only trimmed when the source asks for it.
func ResolveName(ctx context.Context, src NameSource) (string, error) {
	switch s := src.(type) {
	case TextName:
		return s.Text, nil
	case ExecName:
		cmd := exec.CommandContext(ctx, s.Run, s.Args...)
		out, err := cmd.Output()
		if err != nil {
			return "", mdberr.ExternalProcess(err, "failed to run name command %q", s.Run)
		}
		name := strings.ToValidUTF8(string(out), "�")
		if s.Trim {
			name = strings.TrimRight(name, " \t\r\n")
		}
		return name, nil
	default:
		return "", mdberr.NotFound("no name source")
	}
}

// WithNoteExt forces the .md extension on path, replacing any existing
// extension of the last element.
func WithNoteExt(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != "" && ext != base {
		path = strings.TrimSuffix(path, ext)
	}
	return path + bodyExt
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
