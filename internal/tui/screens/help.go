package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/frostlux/internal/models"
	"github.com/angristan/frostlux/internal/tui/messages"
	"github.com/angristan/frostlux/internal/tui/styles"
)

// HelpModel is the key reference overlay
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates the help overlay
func NewHelpModel() HelpModel {
	return HelpModel{}
}

func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update closes the overlay on ?, esc, enter or q
func (m HelpModel) Update(msg tea.Msg) (HelpModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "?", "esc", "enter", "q":
			return m, func() tea.Msg { return messages.HideHelpMsg{} }
		}
	}
	return m, nil
}

type helpEntry struct {
	key  string
	desc string
}

var helpSections = []struct {
	title   string
	entries []helpEntry
}{
	{"Navigation", []helpEntry{
		{"j/k ↑/↓", "select light"},
		{"tab", "toggle side panel"},
		{"R", "refresh now"},
		{"q/esc", "quit"},
	}},
	{"Light", []helpEntry{
		{"space", "toggle on/off"},
		{"h/l ←/→", "brightness -/+ 10%"},
		{"pgdn/pgup", "brightness -/+ 25%"},
		{"+/=", "warmer"},
		{"-", "colder"},
	}},
}

// View renders the overlay centered on screen
func (m HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.StyleModalTitle.Render("Keys"))
	b.WriteString("\n")

	for _, section := range helpSections {
		b.WriteString(styles.StylePrimary.Render(section.title))
		b.WriteString("\n")
		for _, e := range section.entries {
			b.WriteString(renderHelpEntry(e.key, e.desc))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.StylePrimary.Render("Scenes"))
	b.WriteString("\n")
	b.WriteString(renderHelpEntry("s", "scene picker"))
	for _, scene := range models.AllScenes() {
		b.WriteString(renderHelpEntry(scene.Shortcut(), scene.Name()))
	}

	b.WriteString("\n")
	b.WriteString(styles.StyleHelp.Render("press ? or esc to close"))

	modal := styles.StyleModal.Width(44).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func renderHelpEntry(key, desc string) string {
	return "  " + styles.StyleHelpKey.Render(padRight(key, 11)) + " " + desc + "\n"
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
