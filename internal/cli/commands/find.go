package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/docnav/internal/cli/output"
	"github.com/leapstack-labs/docnav/internal/docs"
	"github.com/spf13/cobra"
)

// Crumb is one step of an active trail.
type Crumb struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

// FindResult is the structured output of the find command.
type FindResult struct {
	Item  docs.NavItem `json:"item" yaml:"item"`
	Trail []Crumb      `json:"trail" yaml:"trail"`
}

// NewFindCommand creates the find command.
func NewFindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <path>",
		Short: "Find a navigation entry by href",
		Long: `Find the navigation entry whose href equals <path> and print it with
its active trail, from the top-level section down to the entry.

A path without a leading slash is resolved against the base path.`,
		Example: `  # Full href
  docnav find /docs/mods/examplemod/setup

  # Relative to the base path
  docnav find getting-started`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args[0])
		},
	}

	return cmd
}

func runFind(cmd *cobra.Command, path string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	nav, err := cmdCtx.BuildNavigation(cmd.Context())
	if err != nil {
		return err
	}

	href := resolveHref(nav.BasePath, path)
	item, ok := nav.Find(href)
	if !ok {
		return fmt.Errorf("%w: %s", docs.ErrNotFound, href)
	}

	trail := nav.ActiveTrail(href)
	if handled, err := r.Data(FindResult{Item: *item, Trail: crumbs(trail)}); handled {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeMarkdown:
		findMarkdown(r, item, trail)
	default:
		findText(r, item, trail)
	}
	return nil
}

func findMarkdown(r *output.Renderer, item *docs.NavItem, trail []docs.NavItem) {
	r.Header(1, item.Label)
	r.Println(output.FormatKeyValue("Href", item.Href))
	r.Println(output.FormatKeyValue("Kind", item.Kind.String()))
	r.Println(output.FormatKeyValue("Trail", r.Breadcrumb(trail)))
	if len(item.Items) > 0 {
		r.Println("")
		r.Header(2, "Items")
		r.Println(output.FormatNavMarkdown(item.Items))
	}
}

func findText(r *output.Renderer, item *docs.NavItem, trail []docs.NavItem) {
	s := r.Styles()
	r.Header(1, item.Label)
	r.Printf("  %s %s\n", s.Key.Render("Href: "), s.Link.Render(item.Href))
	r.Printf("  %s %s\n", s.Key.Render("Kind: "), item.Kind.String())
	r.Printf("  %s %s\n", s.Key.Render("Trail:"), r.Breadcrumb(trail))
	if len(item.Items) > 0 {
		r.Println("")
		r.NavTree(item.Items)
	}
}

func crumbs(trail []docs.NavItem) []Crumb {
	out := make([]Crumb, 0, len(trail))
	for _, item := range trail {
		out = append(out, Crumb{Label: item.Label, Href: item.Href})
	}
	return out
}

// resolveHref turns a path relative to the base path into a full href and
// drops a trailing slash.
func resolveHref(basePath, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = basePath + "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
