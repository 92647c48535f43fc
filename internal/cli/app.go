package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AlexanderBrevig/mdb/internal/action"
	"github.com/AlexanderBrevig/mdb/internal/brain"
	"github.com/AlexanderBrevig/mdb/internal/config"
	"github.com/AlexanderBrevig/mdb/internal/editor"
	"github.com/AlexanderBrevig/mdb/internal/logging"
	"github.com/AlexanderBrevig/mdb/internal/template"
	"github.com/AlexanderBrevig/mdb/internal/ui"
)

// app holds flag values and the collaborators built from the config.
type app struct {
	// Global flags
	configPath string
	jsonOutput bool
	debug      int

	opts Options

	// Resolved on load
	cfg        *config.Configuration
	log        *logrus.Logger
	store      *template.Store
	tracker    *brain.Tracker
	dispatcher *action.Dispatcher
}

func newApp(opts Options) *app {
	if opts.WorkDir == nil {
		opts.WorkDir = os.Getwd
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &app{opts: opts, log: logging.Discard()}
}

// load reads the configuration and wires the core.
func (a *app) load() error {
	a.log = logging.New(a.opts.Stderr, a.debug)

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg
	a.log.WithFields(logrus.Fields{"dir": cfg.Dir(), "templates": len(cfg.Templates)}).Info("config loaded")
	ui.ConfigureTheme(cfg.Settings.Accent)

	dataFile, err := cfg.DataFile()
	if err != nil {
		return err
	}

	a.store = template.NewStore(cfg.Templates, cfg.Dir())
	a.tracker = brain.New(dataFile, a.log)
	renderer := template.NewRenderer(a.store, template.WithLogger(a.log))

	var ed action.Editor = a.opts.Editor
	if ed == nil {
		ed = editor.New(cfg.GetEditor(), a.log)
	}

	a.dispatcher = action.NewDispatcher(a.store, renderer, a.tracker, ed,
		action.WithWorkDir(a.opts.WorkDir),
		action.WithLogger(a.log),
	)
	return nil
}

// editorName is the configured editor command, used to build links.
func (a *app) editorName() string {
	if a.cfg == nil {
		return ""
	}
	return a.cfg.GetEditor()
}

// interactive reports whether human output goes to a terminal.
func (a *app) interactive(cmd *cobra.Command) bool {
	if a.jsonOutput {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && ui.IsTerminal(f)
}
