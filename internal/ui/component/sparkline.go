package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/tinystock/internal/ui/style"
)

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a series of closing prices as a one-line chart
type Sparkline struct {
	data  []float64
	width int
	color lipgloss.Color
}

// NewSparkline creates a new sparkline component
func NewSparkline(width int) *Sparkline {
	return &Sparkline{
		width: width,
		color: style.DefaultPalette().Primary,
	}
}

// SetData sets the data points for the sparkline. Only the most recent
// width points are kept.
func (s *Sparkline) SetData(data []float64) *Sparkline {
	if len(data) > s.width && s.width > 0 {
		data = data[len(data)-s.width:]
	}
	s.data = make([]float64, len(data))
	copy(s.data, data)
	return s
}

// SetColor sets the color for the sparkline
func (s *Sparkline) SetColor(color lipgloss.Color) *Sparkline {
	s.color = color
	return s
}

// Len returns the number of points plotted.
func (s *Sparkline) Len() int {
	return len(s.data)
}

// View renders the sparkline
func (s *Sparkline) View() string {
	return lipgloss.NewStyle().Foreground(s.color).Render(s.blocks())
}

func (s *Sparkline) blocks() string {
	if len(s.data) == 0 {
		return strings.Repeat("▁", s.width)
	}

	lo, hi := s.data[0], s.data[0]
	for _, v := range s.data {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo == hi {
		return strings.Repeat("▄", len(s.data))
	}

	var b strings.Builder
	for _, v := range s.data {
		idx := int((v - lo) / (hi - lo) * float64(len(sparkChars)-1))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteRune(sparkChars[idx])
	}
	return b.String()
}

// GetChangePercent returns the percentage change from first to last data point
func (s *Sparkline) GetChangePercent() float64 {
	if len(s.data) < 2 || s.data[0] == 0 {
		return 0
	}
	first := s.data[0]
	return (s.data[len(s.data)-1] - first) / first * 100
}
