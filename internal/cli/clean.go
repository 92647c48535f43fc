package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AlexanderBrevig/mdb/internal/action"
	"github.com/AlexanderBrevig/mdb/internal/ui"
)

func newCleanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Forget tracked notes that no longer exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.dispatcher.Dispatch(cmd.Context(), action.Resolve(action.Default(), action.SubClean))
			if err != nil {
				return a.handleError(cmd, err)
			}
			removed, err := strconv.Atoi(out)
			if err != nil {
				return a.handleError(cmd, fmt.Errorf("unexpected clean result %q: %w", out, err))
			}

			if a.jsonOutput {
				outputSuccess(cmd, map[string]interface{}{"removed": removed})
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Successf("Removed %s", ui.Count(removed, "missing note", "missing notes")))
			return nil
		},
	}
}
