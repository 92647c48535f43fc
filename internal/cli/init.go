package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexanderBrevig/mdb/internal/config"
	"github.com/AlexanderBrevig/mdb/internal/mdberr"
	"github.com/AlexanderBrevig/mdb/internal/ui"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration",
		Long: `Write a commented default configuration to the config directory
(or the --config path) unless one already exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ResolveConfigPath(a.configPath)
			_, statErr := os.Stat(path)
			existed := statErr == nil

			if err := config.WriteDefault(path); err != nil {
				return a.handleError(cmd, mdberr.IO(err, "failed to write config"))
			}

			if a.jsonOutput {
				outputSuccess(cmd, map[string]interface{}{"path": path, "created": !existed})
				return nil
			}
			w := cmd.OutOrStdout()
			if existed {
				fmt.Fprintln(w, ui.Infof("Config already exists at %s", ui.FilePath(path)))
				return nil
			}
			fmt.Fprintln(w, ui.Successf("Created config at %s", ui.FilePath(path)))
			return nil
		},
	}
}
