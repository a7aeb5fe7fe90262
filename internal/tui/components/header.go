package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/frostlux/internal/tui/styles"
)

// RenderHeader renders the application header: the title on the left and
// the gateway with its light count on the right.
func RenderHeader(width int, host string, on, total int, loading bool) string {
	left := styles.StyleHeaderTitle.Render(" FrostLux ")

	var status string
	statusStyle := lipgloss.NewStyle().Padding(0, 1)
	switch {
	case host == "":
		status = "Disconnected"
		statusStyle = statusStyle.Foreground(styles.ColorError)
	case loading && total == 0:
		status = host + " • loading..."
		statusStyle = statusStyle.Foreground(styles.ColorTextMuted)
	default:
		status = fmt.Sprintf("%s • %d/%d on", host, on, total)
		statusStyle = statusStyle.Foreground(styles.ColorSuccess)
	}
	right := statusStyle.Render(status)

	spacing := width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return styles.StyleHeader.Width(max(width, 0)).Render(left + strings.Repeat(" ", spacing) + right)
}
