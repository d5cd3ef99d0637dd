package style

import (
	"github.com/charmbracelet/lipgloss"
)

// HeaderStyles provides styling for the app header and navigation bar
type HeaderStyles struct {
	Container lipgloss.Style
	Title     lipgloss.Style
	User      lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
}

// NewHeaderStyles creates header styles with the given palette
func NewHeaderStyles(palette Palette) HeaderStyles {
	return HeaderStyles{
		Container: lipgloss.NewStyle().
			Background(palette.Background).
			Foreground(palette.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary).
			Padding(0, 2).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),

		User: lipgloss.NewStyle().
			Foreground(palette.TextSecondary),

		NavItem: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Padding(0, 1),

		NavActive: lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Primary).
			Bold(true).
			Padding(0, 1),
	}
}

// TileStyles provides styling for dashboard metric tiles
type TileStyles struct {
	Container lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
}

// NewTileStyles creates metric tile styles
func NewTileStyles(palette Palette) TileStyles {
	return TileStyles{
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Secondary).
			Padding(0, 2).
			MarginRight(1),

		Label: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		Value: lipgloss.NewStyle().
			Foreground(palette.Text).
			Bold(true),
	}
}
