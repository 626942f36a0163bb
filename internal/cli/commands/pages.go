package commands

import (
	"github.com/leapstack-labs/docnav/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewPagesCommand creates the pages command.
func NewPagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "List every href of the navigation tree",
		Long: `List every href of the navigation tree in pre-order, parents before
children. Static site generators use this list to enumerate routes.`,
		Example: `  # Table on a terminal, one href per line when piped
  docnav pages

  # JSON array
  docnav pages -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPages(cmd)
		},
	}

	return cmd
}

func runPages(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	nav, err := cmdCtx.BuildNavigation(cmd.Context())
	if err != nil {
		return err
	}

	pages := nav.Pages()
	if handled, err := r.Data(pages); handled {
		return err
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		for _, href := range pages {
			r.Println(href)
		}
		return nil
	}

	r.PagesTable(output.PageRows(nav.Items))
	return nil
}
