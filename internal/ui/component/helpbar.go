package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/tinystock/internal/ui/style"
)

// HelpBar represents a help bar component showing keyboard shortcuts
type HelpBar struct {
	keyBindings []key.Binding
	width       int

	keyStyle       lipgloss.Style
	descStyle      lipgloss.Style
	sepStyle       lipgloss.Style
	containerStyle lipgloss.Style
}

// NewHelpBar creates a new help bar component
func NewHelpBar() *HelpBar {
	return &HelpBar{
		width:          80,
		keyStyle:       style.HelpKeyStyle,
		descStyle:      style.HelpDescStyle,
		sepStyle:       style.HelpDescStyle,
		containerStyle: style.HelpContainerStyle,
	}
}

// SetKeyBindings sets the key bindings to display
func (h *HelpBar) SetKeyBindings(bindings []key.Binding) *HelpBar {
	h.keyBindings = bindings
	return h
}

// SetWidth sets the help bar width
func (h *HelpBar) SetWidth(width int) *HelpBar {
	if width > 0 {
		h.width = width
	}
	return h
}

// View renders the help bar, wrapping items onto extra lines when they do not fit.
func (h *HelpBar) View() string {
	items := make([]string, 0, len(h.keyBindings))
	for _, binding := range h.keyBindings {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		if help.Key == "" || help.Desc == "" {
			continue
		}
		items = append(items, h.keyStyle.Render(help.Key)+" "+h.descStyle.Render(help.Desc))
	}
	if len(items) == 0 {
		return ""
	}

	separator := h.sepStyle.Render(" • ")
	return h.containerStyle.Render(h.wrap(items, h.width-4, separator))
}

func (h *HelpBar) wrap(items []string, maxWidth int, separator string) string {
	var lines []string
	var line []string
	lineWidth := 0
	sepWidth := lipgloss.Width(separator)

	for _, item := range items {
		itemWidth := lipgloss.Width(item) + sepWidth
		if lineWidth+itemWidth > maxWidth && len(line) > 0 {
			lines = append(lines, strings.Join(line, separator))
			line = nil
			lineWidth = 0
		}
		line = append(line, item)
		lineWidth += itemWidth
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, separator))
	}

	return strings.Join(lines, "\n")
}
