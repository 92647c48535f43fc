package action

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/AlexanderBrevig/mdb/internal/brain"
	"github.com/AlexanderBrevig/mdb/internal/logging"
	"github.com/AlexanderBrevig/mdb/internal/mdberr"
	"github.com/AlexanderBrevig/mdb/internal/template"
)

// Editor opens a note for the user and blocks until they are done.
type Editor interface {
	Open(ctx context.Context, path string) error
}

// Dispatcher executes actions against the configured templates and record.
type Dispatcher struct {
	store    *template.Store
	renderer *template.Renderer
	tracker  *brain.Tracker
	editor   Editor
	workDir  func() (string, error)
	log      logrus.FieldLogger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithWorkDir sets the invocation directory lookup. It defaults to os.Getwd.
func WithWorkDir(fn func() (string, error)) Option {
	return func(d *Dispatcher) {
		if fn != nil {
			d.workDir = fn
		}
	}
}

// WithLogger sets the dispatcher logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// NewDispatcher wires the collaborators. A nil editor skips opening notes.
func NewDispatcher(store *template.Store, renderer *template.Renderer, tracker *brain.Tracker, editor Editor, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:    store,
		renderer: renderer,
		tracker:  tracker,
		editor:   editor,
		workDir:  os.Getwd,
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch runs a and returns its printable result: the note path for
// default, new and add; newline separated entries for list and templates;
// the number of dropped entries for clean.
func (d *Dispatcher) Dispatch(ctx context.Context, a Action) (string, error) {
	d.log.WithFields(logrus.Fields{"action": a.Kind.String(), "named": a.Named.Kind.String()}).Debug("dispatch")

	switch a.Kind {
	case KindDefault:
		return d.handleNamed(ctx, a.Named, false)
	case KindNew:
		return d.handleNamed(ctx, a.Named, true)
	case KindAdd:
		return d.add(a.Named)
	case KindList:
		paths, err := d.tracker.List()
		if err != nil {
			return "", err
		}
		return strings.Join(paths, "\n"), nil
	case KindClean:
		removed, err := d.tracker.Clean()
		if err != nil {
			return "", err
		}
		return strconv.Itoa(removed), nil
	case KindTemplates:
		ids := make([]string, 0, len(d.store.All()))
		for _, t := range d.store.All() {
			ids = append(ids, t.ID)
		}
		return strings.Join(ids, "\n"), nil
	default:
		return "", mdberr.InvalidInput("unknown action %d", a.Kind)
	}
}

func (d *Dispatcher) handleNamed(ctx context.Context, n Named, overwrite bool) (string, error) {
	id := template.DefaultID
	if n.Kind == NamedTemplate || n.Kind == NamedTemplateWithName {
		id = n.Template
	}
	tmpl, ok := d.store.Get(id)
	if !ok {
		return "", mdberr.NotFound("template id %s not found", id)
	}

	cwd, err := d.workDir()
	if err != nil {
		return "", mdberr.IO(err, "failed to get working directory")
	}

	var path string
	switch n.Kind {
	case NamedName, NamedTemplateWithName:
		path, err = d.renderer.RenderToExplicitName(tmpl, cwd, n.Name, overwrite)
	default:
		path, err = d.renderer.RenderToDefaultName(ctx, tmpl, cwd, overwrite)
	}
	if err != nil {
		return "", err
	}

	if d.editor != nil {
		if err := d.editor.Open(ctx, path); err != nil {
			return path, err
		}
	}
	return path, nil
}

func (d *Dispatcher) add(n Named) (string, error) {
	if n.Kind != NamedName || n.Name == "" {
		return "", mdberr.InvalidInput("Name must be set for add command")
	}

	path := n.Name
	if !filepath.IsAbs(path) {
		cwd, err := d.workDir()
		if err != nil {
			return "", mdberr.IO(err, "failed to get working directory")
		}
		path = filepath.Join(cwd, path)
	}
	return d.tracker.Add(template.WithNoteExt(path))
}
