package explorer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	label lipgloss.Style
	value lipgloss.Style
	hint  lipgloss.Style
	busy  lipgloss.Style
	err   lipgloss.Style
	high  lipgloss.Style
	mid   lipgloss.Style
	low   lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		label: lipgloss.NewStyle().Foreground(t.Muted),
		value: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		hint:  lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		busy:  lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		err:   lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		high:  lipgloss.NewStyle().Foreground(t.Error),
		mid:   lipgloss.NewStyle().Foreground(t.Warning),
		low:   lipgloss.NewStyle().Foreground(t.Success),
	}
}

// sparkline renders the last width values as bars. Slow frames are drawn
// in the warning colors.
func (s styles) sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	var b strings.Builder
	for _, v := range values {
		norm := (v - lo) / rng
		idx := int(norm * float64(len(chars)-1))
		idx = max(0, min(idx, len(chars)-1))

		c := string(chars[idx])
		switch {
		case norm > 0.7:
			b.WriteString(s.high.Render(c))
		case norm > 0.3:
			b.WriteString(s.mid.Render(c))
		default:
			b.WriteString(s.low.Render(c))
		}
	}
	return b.String()
}
