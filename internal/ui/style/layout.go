package style

import (
	"github.com/charmbracelet/lipgloss"
)

var palette = DefaultPalette()

// Page styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true).
			Margin(1, 0, 0, 0)

	ContainerStyle = lipgloss.NewStyle().
			Padding(0, 2)
)

// Table styles
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(palette.Secondary).
				Bold(true).
				Padding(0, 1)

	TableRowStyle = lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 1)

	TableRowSelectedStyle = lipgloss.NewStyle().
				Foreground(palette.Background).
				Background(palette.Primary).
				Padding(0, 1)

	TableBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(palette.TextMuted)

	TableEmptyStyle = lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Italic(true).
			Padding(0, 1)
)

// Tab and button styles
var (
	ButtonStyle = lipgloss.NewStyle().
			Foreground(palette.TextSecondary).
			Padding(0, 2).
			Margin(0, 1, 0, 0)

	ButtonActiveStyle = lipgloss.NewStyle().
				Foreground(palette.Background).
				Background(palette.Primary).
				Padding(0, 2).
				Margin(0, 1, 0, 0).
				Bold(true)
)

// Form styles
var (
	FormLabelStyle = lipgloss.NewStyle().
			Foreground(palette.Text).
			Bold(true).
			MarginRight(1)

	FormInputStyle = lipgloss.NewStyle().
			Foreground(palette.Text).
			Background(palette.BackgroundAlt).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted)

	FormInputFocusedStyle = FormInputStyle.
				BorderForeground(palette.Primary)

	FormErrorStyle = lipgloss.NewStyle().
			Foreground(palette.Error)
)

// Status styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(palette.Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(palette.Warning).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(palette.Info)

	MutedStyle = lipgloss.NewStyle().
			Foreground(palette.TextMuted)
)

// Price movement styles
var (
	GainStyle = lipgloss.NewStyle().
			Foreground(palette.Gain).
			Bold(true)

	LossStyle = lipgloss.NewStyle().
			Foreground(palette.Loss).
			Bold(true)

	FlatStyle = lipgloss.NewStyle().
			Foreground(palette.Flat)
)

// Help bar styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(palette.TextMuted)

	HelpContainerStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Margin(1, 0, 0, 0)
)

// Signed picks the gain, loss or flat style for v.
func Signed(v float64) lipgloss.Style {
	switch {
	case v > 0:
		return GainStyle
	case v < 0:
		return LossStyle
	default:
		return FlatStyle
	}
}

// SignedColor picks the gain, loss or flat colour for v.
func SignedColor(v float64) lipgloss.Color {
	switch {
	case v > 0:
		return palette.Gain
	case v < 0:
		return palette.Loss
	default:
		return palette.Flat
	}
}

// AdaptiveJoinHorizontal lays blocks side by side, stacking them on narrow screens.
func AdaptiveJoinHorizontal(width int, blocks ...string) string {
	if width > 0 && width < 80 {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
