package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/docnav/internal/docs"
)

// NavTree writes the tree in the effective mode: a box-drawn tree for text,
// a nested link list for markdown.
func (r *Renderer) NavTree(items []docs.NavItem) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println(FormatNavMarkdown(items))
		return
	}
	for _, item := range items {
		r.Println(r.navLine(item))
		r.navChildren(item.Items, "")
	}
}

func (r *Renderer) navChildren(items []docs.NavItem, prefix string) {
	for i, item := range items {
		connector, indent := "├── ", "│   "
		if i == len(items)-1 {
			connector, indent = "└── ", "    "
		}
		r.Println(r.styles.Muted.Render(prefix+connector) + r.navLine(item))
		r.navChildren(item.Items, prefix+indent)
	}
}

func (r *Renderer) navLine(item docs.NavItem) string {
	label := r.kindStyle(item.Kind).Render(item.Label)
	line := label + "  " + r.styles.Link.Render(item.Href)
	if item.ExpandedByDefault {
		line += r.styles.Muted.Render(" (expanded)")
	}
	return line
}

func (r *Renderer) kindStyle(k docs.Kind) lipgloss.Style {
	switch k {
	case docs.KindCategory:
		return r.styles.Category
	case docs.KindGroup:
		return r.styles.Group
	case docs.KindProject, docs.KindProjects:
		return r.styles.Project
	}
	return r.styles.Page
}

// FormatNavMarkdown renders the tree as a nested markdown list of links.
func FormatNavMarkdown(items []docs.NavItem) string {
	var sb strings.Builder
	var walk func(items []docs.NavItem, depth int)
	walk = func(items []docs.NavItem, depth int) {
		for _, item := range items {
			sb.WriteString(strings.Repeat("  ", depth))
			sb.WriteString("- ")
			sb.WriteString(FormatLink(item.Label, item.Href))
			sb.WriteString("\n")
			walk(item.Items, depth+1)
		}
	}
	walk(items, 0)
	return strings.TrimRight(sb.String(), "\n")
}

// PageRow is one line of the flat page listing.
type PageRow struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
	Kind  string `json:"kind" yaml:"kind"`
	Depth int    `json:"depth" yaml:"depth"`
}

// PageRows flattens the tree in pre-order, matching docs.Pages.
func PageRows(items []docs.NavItem) []PageRow {
	rows := []PageRow{}
	var walk func(items []docs.NavItem, depth int)
	walk = func(items []docs.NavItem, depth int) {
		for _, item := range items {
			rows = append(rows, PageRow{
				Label: item.Label,
				Href:  item.Href,
				Kind:  item.Kind.String(),
				Depth: depth,
			})
			walk(item.Items, depth+1)
		}
	}
	walk(items, 0)
	return rows
}

// PagesTable writes the rows as a table.
func (r *Renderer) PagesTable(rows []PageRow) {
	if len(rows) == 0 {
		r.Println(r.styles.Muted.Render("(0 pages)"))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Label", "Href", "Kind"})
	for i, row := range rows {
		t.AppendRow(table.Row{i + 1, strings.Repeat("  ", row.Depth) + row.Label, row.Href, row.Kind})
	}
	t.Render()
	r.Println(r.styles.Muted.Render(fmt.Sprintf("(%d pages)", len(rows))))
}

// Breadcrumb joins trail labels with a separator.
func (r *Renderer) Breadcrumb(trail []docs.NavItem) string {
	labels := make([]string, 0, len(trail))
	for _, item := range trail {
		labels = append(labels, item.Label)
	}
	sep := " › "
	if r.EffectiveMode() == ModeMarkdown {
		sep = " > "
	}
	return strings.Join(labels, sep)
}
