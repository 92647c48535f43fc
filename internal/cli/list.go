package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlexanderBrevig/mdb/internal/action"
	"github.com/AlexanderBrevig/mdb/internal/parser"
	"github.com/AlexanderBrevig/mdb/internal/ui"
)

type noteEntry struct {
	Path  string `json:"path"`
	Title string `json:"title,omitempty"`
}

func newListCmd(a *app) *cobra.Command {
	var titles bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tracked notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.dispatcher.Dispatch(cmd.Context(), action.Resolve(action.Default(), action.SubList))
			if err != nil {
				return a.handleError(cmd, err)
			}

			entries := make([]noteEntry, 0)
			for _, p := range splitLines(out) {
				entry := noteEntry{Path: p}
				if titles {
					title, err := parser.ReadTitle(p)
					if err != nil {
						a.log.WithError(err).WithField("path", p).Warn("could not read note title")
					}
					entry.Title = title
				}
				entries = append(entries, entry)
			}

			if a.jsonOutput {
				outputSuccess(cmd, map[string]interface{}{"notes": entries})
				return nil
			}
			printNotes(cmd, a, entries, titles)
			return nil
		},
	}
	cmd.Flags().BoolVar(&titles, "titles", false, "Show each note's title")
	return cmd
}

func printNotes(cmd *cobra.Command, a *app, entries []noteEntry, titles bool) {
	w := cmd.OutOrStdout()
	links := a.interactive(cmd)

	display := func(p string) string {
		if !links {
			return p
		}
		return ui.Hyperlink(ui.EditorURL(a.editorName(), p), ui.FilePath(p))
	}

	if !titles {
		for _, e := range entries {
			fmt.Fprintln(w, display(e.Path))
		}
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Path, e.Title})
	}
	if links {
		fmt.Fprintln(w, ui.RenderTable([]string{"PATH", "TITLE"}, rows))
		return
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", r[0], r[1])
	}
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
