package style

import "github.com/charmbracelet/lipgloss"

// TinyStock colours. Gain and loss follow the usual market convention.
var (
	Teal   = lipgloss.Color("#14B8A6")
	Violet = lipgloss.Color("#A78BFA")
	Amber  = lipgloss.Color("#F59E0B")
	Green  = lipgloss.Color("#22C55E")
	Red    = lipgloss.Color("#EF4444")
	Sky    = lipgloss.Color("#38BDF8")

	Ink      = lipgloss.Color("#111827")
	InkLight = lipgloss.Color("#1F2937")
	Slate    = lipgloss.Color("#6B7280")
	Snow     = lipgloss.Color("#F9FAFB")
	Mist     = lipgloss.Color("#D1D5DB")
)

// Palette groups colours by role.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color
	Info      lipgloss.Color

	Background    lipgloss.Color
	BackgroundAlt lipgloss.Color
	Text          lipgloss.Color
	TextMuted     lipgloss.Color
	TextSecondary lipgloss.Color

	// Price movement
	Gain lipgloss.Color
	Loss lipgloss.Color
	Flat lipgloss.Color
}

// DefaultPalette returns the TinyStock palette
func DefaultPalette() Palette {
	return Palette{
		Primary:       Teal,
		Secondary:     Violet,
		Success:       Green,
		Error:         Red,
		Warning:       Amber,
		Info:          Sky,
		Background:    Ink,
		BackgroundAlt: InkLight,
		Text:          Snow,
		TextMuted:     Slate,
		TextSecondary: Mist,
		Gain:          Green,
		Loss:          Red,
		Flat:          Slate,
	}
}
