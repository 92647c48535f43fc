package cli

import (
	"github.com/spf13/cobra"

	"github.com/AlexanderBrevig/mdb/internal/action"
)

func newNewCmd(a *app) *cobra.Command {
	var templateFlag string
	cmd := &cobra.Command{
		Use:   "new [template|name]",
		Short: "Create a new note, replacing an existing one",
		Long: `Create a note from a template and open it.

Unlike plain mdb, an existing note with the same name is overwritten with a
freshly rendered template.

Examples:
  mdb new ideas
  mdb new -t meeting retro`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			named, err := a.classify(templateFlag, args)
			if err != nil {
				return a.handleError(cmd, err)
			}
			return a.runNamed(cmd, action.Resolve(named, action.SubNew))
		},
	}
	addTemplateFlag(cmd.Flags(), &templateFlag)
	return cmd
}

// runNamed renders a note and opens it in the editor.
func (a *app) runNamed(cmd *cobra.Command, act action.Action) error {
	path, err := a.dispatcher.Dispatch(cmd.Context(), act)
	if err != nil {
		return a.handleError(cmd, err)
	}

	if a.jsonOutput {
		outputSuccess(cmd, map[string]interface{}{"path": path})
		return nil
	}
	a.log.WithField("path", path).Info("note ready")
	return nil
}
