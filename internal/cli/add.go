package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexanderBrevig/mdb/internal/action"
	"github.com/AlexanderBrevig/mdb/internal/ui"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add an existing note to the tracked notes",
		Long: `Track an existing note so it shows up in mdb list.

The name is resolved against the current directory unless it is absolute,
and the .md extension is applied.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			named, err := a.classify("", args)
			if err != nil {
				return a.handleError(cmd, err)
			}

			path, err := a.dispatcher.Dispatch(cmd.Context(), action.Resolve(named, action.SubAdd))
			if err != nil {
				return a.handleError(cmd, err)
			}

			if a.jsonOutput {
				outputSuccess(cmd, map[string]interface{}{"path": path})
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Successf("Tracking %s", ui.FilePath(path)))
			return nil
		},
	}
}
