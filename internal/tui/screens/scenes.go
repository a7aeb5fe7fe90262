package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/frostlux/internal/models"
	"github.com/angristan/frostlux/internal/tui/messages"
	"github.com/angristan/frostlux/internal/tui/styles"
)

// ScenesModel is the scene picker modal
type ScenesModel struct {
	scenes   []models.Scene
	selected int

	// Window size
	width  int
	height int
}

// NewScenesModel creates a new scenes screen model
func NewScenesModel() ScenesModel {
	return ScenesModel{scenes: models.AllScenes()}
}

// SetSize sets the terminal size
func (m *ScenesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reset moves the cursor back to the first scene
func (m *ScenesModel) Reset() {
	m.selected = 0
}

// Selected returns the scene under the cursor
func (m ScenesModel) Selected() models.Scene {
	return m.scenes[m.selected]
}

// Update handles messages
func (m ScenesModel) Update(msg tea.Msg) (ScenesModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "esc", "s", "q":
		return m, func() tea.Msg { return messages.HideScenesMsg{} }

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.scenes)-1 {
			m.selected++
		}

	case "enter", " ":
		scene := m.Selected()
		return m, func() tea.Msg { return messages.ApplySceneMsg{Scene: scene} }

	default:
		// Scene shortcuts work inside the picker too
		if scene, ok := models.SceneByShortcut(key); ok {
			return m, func() tea.Msg { return messages.ApplySceneMsg{Scene: scene} }
		}
	}

	return m, nil
}

// View renders the scenes modal
func (m ScenesModel) View() string {
	var b strings.Builder

	b.WriteString(styles.StyleModalTitle.Render("Scenes"))
	b.WriteString("\n")

	for i, scene := range m.scenes {
		style := styles.StyleSceneItem
		cursor := "  "
		if i == m.selected {
			style = styles.StyleSceneItemSelected
			cursor = "> "
		}

		key := styles.StyleHelpKey.Render(scene.Shortcut())
		line := fmt.Sprintf("%-13s", scene.Name())
		b.WriteString(cursor + key + " " + style.Render(line) + " " + styles.StyleTextMuted.Render(describe(scene)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.StyleHelp.Render("↑/↓ navigate • enter apply • esc close"))

	modalWidth := min(max(m.width*70/100, 44), 60)
	modal := styles.StyleModal.Width(modalWidth).Render(b.String())

	// Center in screen
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

// describe summarizes what a scene does to each light
func describe(scene models.Scene) string {
	s := scene.Settings()
	if !s.On {
		return "off"
	}
	pct := (int(s.Brightness)*100 + models.MaxBrightness/2) / models.MaxBrightness
	return fmt.Sprintf("%d%% %s", pct, models.ColorTempLabel(s.Color))
}
