// Package cli implements the command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexanderBrevig/mdb/internal/action"
	"github.com/AlexanderBrevig/mdb/internal/ui"
)

// Options overrides process state for embedding and tests.
type Options struct {
	// WorkDir returns the invocation directory. Defaults to os.Getwd.
	WorkDir func() (string, error)

	// Editor replaces the configured editor.
	Editor action.Editor

	// Stderr receives log output. Defaults to os.Stderr.
	Stderr io.Writer
}

// NewRootCmd builds the mdb command tree.
func NewRootCmd(opts Options) *cobra.Command {
	a := newApp(opts)

	var templateFlag string
	cmd := &cobra.Command{
		Use:   "mdb [template|name]",
		Short: "mdb - markdown notes from templates",
		Long: `mdb creates markdown notes from templates and opens them in your editor.

A single argument is treated as a template id when a template with that id
exists, otherwise as the note name. Without arguments the default template
names the note itself.

Examples:
  mdb                  # default template, default name
  mdb ideas            # default template, note ideas.md
  mdb meeting          # meeting template, its default name
  mdb -t meeting retro # meeting template, note retro.md`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Name() {
			case "init", "version", "help", "completion":
				return nil
			}
			if err := a.load(); err != nil {
				return a.handleError(cmd, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			named, err := a.classify(templateFlag, args)
			if err != nil {
				return a.handleError(cmd, err)
			}
			return a.runNamed(cmd, action.Resolve(named, action.SubNone))
		},
	}

	cmd.PersistentFlags().CountVarP(&a.debug, "debug", "d", "Turn debugging information on (repeat for more)")
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file")
	cmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Output in JSON format (for scripts)")
	addTemplateFlag(cmd.Flags(), &templateFlag)

	cmd.AddCommand(
		newNewCmd(a),
		newAddCmd(a),
		newListCmd(a),
		newCleanCmd(a),
		newTemplatesCmd(a),
		newInitCmd(a),
		newVersionCmd(a),
	)
	return cmd
}

// Execute runs mdb with the process arguments and returns the exit code.
func Execute() int {
	cmd := NewRootCmd(Options{})
	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return 1
}
