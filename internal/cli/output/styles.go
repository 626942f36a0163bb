package output

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all terminal output.
const (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorError     = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorHighlight = lipgloss.Color("#3B82F6")
)

// Styles holds the lipgloss styles of a renderer.
type Styles struct {
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Link      lipgloss.Style
	Key       lipgloss.Style

	// Node labels by kind.
	Category lipgloss.Style
	Group    lipgloss.Style
	Project  lipgloss.Style
	Page     lipgloss.Style
}

// NewStyles creates styles bound to the given lipgloss renderer, so color
// output follows that renderer's profile.
func NewStyles(lg *lipgloss.Renderer) *Styles {
	return &Styles{
		Header:    lg.NewStyle().Bold(true).Foreground(ColorPrimary),
		Subheader: lg.NewStyle().Bold(true),
		Bold:      lg.NewStyle().Bold(true),
		Muted:     lg.NewStyle().Foreground(ColorMuted),
		Success:   lg.NewStyle().Foreground(ColorSuccess),
		Warning:   lg.NewStyle().Foreground(ColorWarning),
		Error:     lg.NewStyle().Bold(true).Foreground(ColorError),
		Link:      lg.NewStyle().Foreground(ColorHighlight),
		Key:       lg.NewStyle().Foreground(ColorMuted),
		Category:  lg.NewStyle().Bold(true),
		Group:     lg.NewStyle().Bold(true).Foreground(ColorPrimary),
		Project:   lg.NewStyle().Bold(true).Foreground(ColorSuccess),
		Page:      lg.NewStyle(),
	}
}
