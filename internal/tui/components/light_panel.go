package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/frostlux/internal/models"
	"github.com/angristan/frostlux/internal/tui/styles"
)

// RenderLightPanel renders the side panel describing the selected light
func RenderLightPanel(light *models.Light, width int) string {
	inner := max(width-4, 10)
	if light == nil {
		return styles.StylePanel.Width(inner).Render(styles.StyleTextMuted.Render("No selection"))
	}

	barWidth := min(max(width-10, 10), 25)

	var b strings.Builder

	b.WriteString(styles.StyleSelected.Render(light.Name))
	b.WriteString("\n\n")

	status := styles.StyleStatusOff.Render("○ Off")
	if light.On {
		status = styles.StyleStatusOn.Render("● On")
	}
	b.WriteString(status)
	if !light.Reachable {
		b.WriteString(styles.StyleUnreachable.Render("  unreachable"))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.StyleTextMuted.Render("Brightness: "))
	b.WriteString(fmt.Sprintf("%d%% (%d/%d)\n", light.BrightnessPct(), light.Brightness, models.MaxBrightness))
	b.WriteString(RenderBrightnessBar(light.BrightnessPct(), light.On, barWidth))
	b.WriteString("\n\n")

	b.WriteString(styles.StyleTextMuted.Render("Temperature: "))
	if label := light.ColorTempLabel(); label != "" {
		b.WriteString(label)
	} else {
		b.WriteString("--")
	}
	b.WriteString("\n")
	b.WriteString(renderTempScale(light.Color))
	b.WriteString("\n\n")

	b.WriteString(styles.StyleTextMuted.Render("Color: "))
	b.WriteString(lipgloss.NewStyle().
		Background(lipgloss.Color(models.Swatch(light.Color, models.MaxBrightness, true))).
		Render("    "))
	if light.Color != "" {
		b.WriteString(styles.StyleTextMuted.Render(" #" + light.Color))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.StyleTextMuted.Render(fmt.Sprintf("ID: %d", light.ID)))
	b.WriteString("\n\n")
	b.WriteString(styles.StyleTextMuted.Render("←→ dim • +/- temp"))

	return styles.StylePanel.Width(inner).Render(b.String())
}

// renderTempScale shows the three presets with the current one marked
func renderTempScale(hex string) string {
	label := models.ColorTempLabel(hex)

	parts := make([]string, 0, len(models.ColorTemps))
	for _, ct := range models.ColorTemps {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("#" + ct.Hex))
		mark := "○"
		if ct.Name == label {
			mark = "●"
		}
		parts = append(parts, style.Render(mark+" "+ct.Name))
	}
	return strings.Join(parts, "  ")
}
