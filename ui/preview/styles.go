package preview

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the previewer chrome. The spans
// themselves are colored by the pretty renderer, not by these.
type Styles struct {
	Title      lipgloss.Style
	Section    lipgloss.Style
	Marker     lipgloss.Style
	SpanKind   lipgloss.Style
	SpanDetail lipgloss.Style
	Help       lipgloss.Style
	Preview    lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		Section: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Marker: lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")),
		SpanKind: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")),
		SpanDetail: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Preview: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}
