package component

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/tinystock/internal/ui/style"
)

// Tile is a labelled metric with an optional coloured delta line.
type Tile struct {
	Label      string
	Value      string
	Delta      string
	DeltaStyle lipgloss.Style
}

// View renders the tile
func (t Tile) View() string {
	st := style.NewTileStyles(style.DefaultPalette())
	lines := []string{st.Label.Render(t.Label), st.Value.Render(t.Value)}
	if t.Delta != "" {
		lines = append(lines, t.DeltaStyle.Render(t.Delta))
	}
	return st.Container.Width(22).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Tiles lays tiles out in a row, stacking on narrow screens.
func Tiles(width int, tiles ...Tile) string {
	views := make([]string, len(tiles))
	for i, t := range tiles {
		views[i] = t.View()
	}
	return style.AdaptiveJoinHorizontal(width, views...)
}
