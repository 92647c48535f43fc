package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlexanderBrevig/mdb/internal/action"
	"github.com/AlexanderBrevig/mdb/internal/mdberr"
	"github.com/AlexanderBrevig/mdb/internal/template"
	"github.com/AlexanderBrevig/mdb/internal/ui"
)

type templateInfo struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Body string `json:"body"`
	Dir  string `json:"dir,omitempty"`
	Slug bool   `json:"slug,omitempty"`
}

func newTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List existing templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.dispatcher.Dispatch(cmd.Context(), action.Resolve(action.Default(), action.SubTemplates))
			if err != nil {
				return a.handleError(cmd, err)
			}

			infos := make([]templateInfo, 0)
			for _, id := range splitLines(out) {
				tmpl, ok := a.store.Get(id)
				if !ok {
					continue
				}
				infos = append(infos, a.describeTemplate(tmpl))
			}

			if a.jsonOutput {
				outputSuccess(cmd, map[string]interface{}{"templates": infos})
				return nil
			}

			w := cmd.OutOrStdout()
			if !a.interactive(cmd) {
				for _, info := range infos {
					fmt.Fprintln(w, info.ID)
				}
				return nil
			}
			if len(infos) == 0 {
				fmt.Fprintln(w, ui.Hint("No templates configured in "+a.cfg.Dir()))
				return nil
			}
			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				rows = append(rows, []string{info.ID, info.Name, info.Body, info.Dir})
			}
			fmt.Fprintln(w, ui.RenderTable([]string{"ID", "NAME", "BODY", "DIR"}, rows))
			return nil
		},
	}
	cmd.AddCommand(newTemplatesShowCmd(a))
	return cmd
}

func newTemplatesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a template body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, ok := a.store.Lookup(args[0])
			if !ok {
				return a.handleError(cmd, mdberr.NotFound("template id %s not found", args[0]))
			}
			body, err := a.store.Body(tmpl)
			if err != nil {
				return a.handleError(cmd, err)
			}

			if a.jsonOutput {
				info := a.describeTemplate(tmpl)
				outputSuccess(cmd, map[string]interface{}{"template": info, "content": body})
				return nil
			}

			w := cmd.OutOrStdout()
			if !a.interactive(cmd) {
				fmt.Fprint(w, body)
				return nil
			}
			fmt.Fprintln(w, ui.Header(tmpl.ID))
			rendered, err := ui.RenderMarkdown(body, ui.DetectTerminal(os.Stdout).ContentWidth(ui.MarkdownRenderMargin))
			if err != nil {
				a.log.WithError(err).Warn("markdown rendering failed, printing raw body")
				fmt.Fprint(w, body)
				return nil
			}
			fmt.Fprint(w, rendered)
			return nil
		},
	}
}

func (a *app) describeTemplate(tmpl *template.Template) templateInfo {
	info := templateInfo{
		ID:   tmpl.ID,
		Name: describeNameSource(tmpl.Name),
		Dir:  tmpl.Dir,
		Slug: tmpl.Slug,
	}
	switch {
	case tmpl.Content != nil:
		info.Body = "inline"
	case a.store.FileExists(tmpl.ID):
		info.Body = a.store.BodyPath(tmpl.ID)
	default:
		info.Body = "missing " + a.store.BodyPath(tmpl.ID)
	}
	return info
}

func describeNameSource(src template.NameSource) string {
	switch s := src.(type) {
	case template.TextName:
		return "text: " + s.Text
	case template.ExecName:
		desc := "exec: " + strings.TrimSpace(strings.Join(append([]string{s.Run}, s.Args...), " "))
		if s.Trim {
			desc += " (trim)"
		}
		return desc
	default:
		return ""
	}
}
