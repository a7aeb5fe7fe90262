package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/frostlux/internal/tui/styles"
)

// RenderBrightnessBar renders pct (0-100) as a bar of width cells. Off
// lights render as an empty track.
func RenderBrightnessBar(pct int, on bool, width int) string {
	if width <= 0 {
		return ""
	}
	if !on || pct <= 0 {
		return styles.StyleBrightnessBarEmpty.Render(strings.Repeat("─", width))
	}

	filled := (pct * width) / 100
	if filled == 0 {
		filled = 1
	}

	var b strings.Builder
	for i := 1; i <= width; i++ {
		if i <= filled {
			color := styles.GetBrightnessColor(i, width)
			b.WriteString(lipgloss.NewStyle().Foreground(color).Render("█"))
		} else {
			b.WriteString(styles.StyleBrightnessBarEmpty.Render("─"))
		}
	}

	return b.String()
}
