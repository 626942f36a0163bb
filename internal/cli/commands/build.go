package commands

import (
	"fmt"

	"github.com/leapstack-labs/docnav/internal/cli/output"
	"github.com/leapstack-labs/docnav/internal/docs"
	"github.com/spf13/cobra"
)

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	var writePath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build and print the navigation tree",
		Long: `Scan the content directory and print the navigation tree.

Output adapts to environment:
  - Terminal: Styled tree
  - Piped/Scripted: Markdown list (agent-friendly)

Use --output to override: auto, text, markdown, json, yaml.
Use --write to also save a manifest (JSON, or YAML for .yaml/.yml files).`,
		Example: `  # Print the tree
  docnav build

  # Print the tree as JSON
  docnav build --output json

  # Write a manifest for the site build
  docnav build --write public/nav.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, writePath)
		},
	}

	cmd.Flags().StringVar(&writePath, "write", "", "Write a manifest file to this path")

	return cmd
}

func runBuild(cmd *cobra.Command, writePath string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	nav, err := cmdCtx.BuildNavigation(cmd.Context())
	if err != nil {
		return err
	}

	if writePath != "" {
		m := docs.GenerateManifest(nav)
		if err := docs.WriteManifest(writePath, m); err != nil {
			return err
		}
		cmdCtx.Logger.Info("manifest written", "path", writePath, "pages", m.Stats.PageCount)
	}

	if handled, err := r.Data(nav); handled {
		return err
	}

	r.Header(1, "Navigation")
	r.NavTree(nav.Items)
	if r.EffectiveMode() == output.ModeText {
		r.Println(r.Muted(fmt.Sprintf("%d top-level sections, %d entries", len(nav.Items), len(nav.Pages()))))
	}

	if writePath != "" {
		r.Println("")
		r.Success(fmt.Sprintf("Manifest written to %s", writePath))
	}

	return nil
}
