package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/frostlux/internal/models"
	"github.com/angristan/frostlux/internal/tui/styles"
)

// RenderLightRow renders one line of the light list
func RenderLightRow(light *models.Light, selected bool, width int) string {
	// Cursor - always same width character
	cursor := "  "
	if selected {
		cursor = styles.StyleSelected.Render("> ")
	}

	icon := styles.StyleStatusOff.Render("○")
	if light.On {
		icon = styles.StyleStatusOn.Render("●")
	}

	// Fixed parts: cursor(2) + icon(1) + spaces(4) + pct(4) + swatch(2) + temp(8)
	available := width - 21
	barWidth := available * 35 / 100
	barWidth = min(max(barWidth, 8), 20)
	nameWidth := min(max(available-barWidth, 10), 40)

	nameStyle := styles.StyleLightNameDim
	if light.On {
		nameStyle = styles.StyleLightName
	}
	if selected {
		nameStyle = styles.StyleSelected
	}
	name := nameStyle.Render(pad(light.Name, nameWidth))

	bar := RenderBrightnessBar(light.BrightnessPct(), light.On, barWidth)
	pct := styles.StyleTextMuted.Render(fmt.Sprintf("%3d%%", light.BrightnessPct()))

	swatch := lipgloss.NewStyle().
		Foreground(lipgloss.Color(models.Swatch(light.Color, light.Brightness, light.On))).
		Render(" ◆")

	temp := styles.StyleTextMuted.Render(fmt.Sprintf(" %-7s", light.ColorTempLabel()))
	if !light.Reachable {
		temp = styles.StyleUnreachable.Render(" offline")
	}

	return fmt.Sprintf("%s%s %s  %s %s%s%s", cursor, icon, name, bar, pct, swatch, temp)
}

// pad truncates or right-pads s to exactly n cells
func pad(s string, n int) string {
	w := lipgloss.Width(s)
	if w <= n {
		return s + strings.Repeat(" ", n-w)
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > n {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
