package screens

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/frostlux/internal/api"
	"github.com/angristan/frostlux/internal/models"
	"github.com/angristan/frostlux/internal/tui/components"
	"github.com/angristan/frostlux/internal/tui/messages"
	"github.com/angristan/frostlux/internal/tui/styles"
)

// Direction represents the direction of a change
type Direction int

const (
	DirExact Direction = iota // Exact match required (power, color)
	DirUp                     // Value is increasing
	DirDown                   // Value is decreasing
)

// PendingAdder is a function that registers a pending operation with direction
type PendingAdder func(lightID uint64, field string, value any, dir Direction)

const (
	// StatusTTL is how long a status message stays visible
	StatusTTL = 3 * time.Second

	brightnessStep = 25
	brightnessPage = 64
)

// MainModel is the light list screen
type MainModel struct {
	ctx    context.Context
	host   string
	lights []*models.Light

	selectedIndex int
	scrollOffset  int

	showPanel bool

	// Loading state
	loading bool
	spinner spinner.Model

	status    string
	statusErr bool
	statusAt  time.Time
	now       func() time.Time

	width  int
	height int
}

// NewMainModel creates a new main screen model
func NewMainModel(ctx context.Context, host string) MainModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StyleSpinner

	return MainModel{
		ctx:       ctx,
		host:      host,
		showPanel: true,
		loading:   true, // Start in loading state
		spinner:   sp,
		now:       time.Now,
	}
}

// Init initializes the main screen
func (m MainModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *MainModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// SetLights replaces the list, keeping the selection on the same light
func (m *MainModel) SetLights(lights []*models.Light) {
	var selectedID uint64
	hadSelection := false
	if l := m.SelectedLight(); l != nil {
		selectedID, hadSelection = l.ID, true
	}

	models.SortByName(lights)
	m.lights = lights
	m.loading = false

	if hadSelection {
		for i, l := range lights {
			if l.ID == selectedID {
				m.selectedIndex = i
				break
			}
		}
	}
	if m.selectedIndex >= len(m.lights) {
		m.selectedIndex = max(0, len(m.lights)-1)
	}
	m.ensureVisible()
}

// Lights returns the lights currently shown
func (m *MainModel) Lights() []*models.Light {
	return m.lights
}

func (m *MainModel) SetLoading(loading bool) {
	m.loading = loading
}

// SetStatus shows text in the status bar for StatusTTL. The returned
// command triggers a redraw once it has expired.
func (m *MainModel) SetStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusErr = isErr
	m.statusAt = m.now()
	return tea.Tick(StatusTTL, func(time.Time) tea.Msg { return messages.StatusExpiredMsg{} })
}

// Status returns the current status message, if it has not expired
func (m MainModel) Status() (string, bool) {
	if m.status == "" || m.now().Sub(m.statusAt) >= StatusTTL {
		return "", false
	}
	return m.status, true
}

func (m *MainModel) SelectedLight() *models.Light {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.lights) {
		return m.lights[m.selectedIndex]
	}
	return nil
}

// visibleLines returns how many rows fit in the viewport
func (m *MainModel) visibleLines() int {
	// header(1) + blank(1) + status(1) + help(1) + scroll indicators(2)
	return max(m.height-6, 3)
}

// ensureVisible adjusts scrollOffset so selectedIndex is visible
func (m *MainModel) ensureVisible() {
	visible := m.visibleLines()

	if m.selectedIndex < m.scrollOffset {
		m.scrollOffset = m.selectedIndex
	}
	if m.selectedIndex >= m.scrollOffset+visible {
		m.scrollOffset = m.selectedIndex - visible + 1
	}

	maxScroll := max(len(m.lights)-visible, 0)
	m.scrollOffset = min(max(m.scrollOffset, 0), maxScroll)
}

func (m MainModel) Update(msg tea.Msg, client api.GatewayClient, addPending PendingAdder) (MainModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()

		if scene, ok := models.SceneByShortcut(key); ok {
			return m, func() tea.Msg { return messages.ApplySceneMsg{Scene: scene} }
		}

		switch key {
		case "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.selectedIndex > 0 {
				m.selectedIndex--
				m.ensureVisible()
			}

		case "down", "j":
			if m.selectedIndex < len(m.lights)-1 {
				m.selectedIndex++
				m.ensureVisible()
			}

		case "home":
			m.selectedIndex = 0
			m.ensureVisible()

		case "end":
			m.selectedIndex = max(len(m.lights)-1, 0)
			m.ensureVisible()

		case " ":
			if light := m.SelectedLight(); light != nil {
				light.On = !light.On
				if addPending != nil {
					addPending(light.ID, "on", light.On, DirExact)
				}
				label := "OFF"
				if light.On {
					label = "ON"
				}
				cmds = append(cmds,
					m.SetStatus(fmt.Sprintf("%s: %s", light.Name, label), false),
					m.setPowerCmd(client, light, light.On))
			}

		case "left", "h":
			cmds = append(cmds, m.adjustBrightness(client, addPending, -brightnessStep))

		case "right", "l":
			cmds = append(cmds, m.adjustBrightness(client, addPending, brightnessStep))

		case "pgdown":
			cmds = append(cmds, m.adjustBrightness(client, addPending, -brightnessPage))

		case "pgup":
			cmds = append(cmds, m.adjustBrightness(client, addPending, brightnessPage))

		case "+", "=":
			cmds = append(cmds, m.stepColorTemp(client, addPending, true))

		case "-":
			cmds = append(cmds, m.stepColorTemp(client, addPending, false))

		case "s":
			return m, func() tea.Msg { return messages.ShowScenesMsg{} }

		case "?":
			return m, func() tea.Msg { return messages.ShowHelpMsg{} }

		case "tab":
			m.showPanel = !m.showPanel

		case "R":
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, func() tea.Msg { return messages.RefreshMsg{} })
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// adjustBrightness moves the selected light's brightness by delta. Dimming
// to zero turns it off, any other level turns it on.
func (m *MainModel) adjustBrightness(client api.GatewayClient, addPending PendingAdder, delta int) tea.Cmd {
	light := m.SelectedLight()
	if light == nil {
		return nil
	}

	old := light.Brightness
	wasOn := light.On
	b := light.AdjustBrightness(delta)

	if addPending != nil {
		dir := DirExact
		if b > old {
			dir = DirUp
		} else if b < old {
			dir = DirDown
		}
		addPending(light.ID, "brightness", int(b), dir)
		if light.On != wasOn {
			addPending(light.ID, "on", light.On, DirExact)
		}
	}

	return tea.Batch(
		m.SetStatus(fmt.Sprintf("%s: %d%%", light.Name, light.BrightnessPct()), false),
		m.setBrightnessCmd(client, light, b),
	)
}

// stepColorTemp moves the selected light one preset warmer or colder
func (m *MainModel) stepColorTemp(client api.GatewayClient, addPending PendingAdder, warmer bool) tea.Cmd {
	light := m.SelectedLight()
	if light == nil {
		return nil
	}

	ct := models.NextColorTemp(light.Color, warmer)
	light.Color = ct.Hex
	if addPending != nil {
		addPending(light.ID, "color", ct.Hex, DirExact)
	}

	return tea.Batch(
		m.SetStatus(fmt.Sprintf("%s: %s", light.Name, ct.Name), false),
		m.setColorCmd(client, light, ct),
	)
}

func (m MainModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderHeader(m.width, m.host, models.CountOn(m.lights), len(m.lights), m.loading))
	b.WriteString("\n\n")

	contentWidth := m.width
	panelWidth := 0
	// Auto-hide panel on narrow terminals
	showPanelNow := m.showPanel && m.width >= 90
	if showPanelNow {
		panelWidth = min(max(m.width*30/100, 30), 40)
		contentWidth = m.width - panelWidth - 2
	}

	var content strings.Builder
	visible := m.visibleLines()
	endIdx := min(m.scrollOffset+visible, len(m.lights))

	if m.scrollOffset > 0 {
		content.WriteString(styles.StyleTextMuted.Render(fmt.Sprintf("  ↑ %d more above", m.scrollOffset)))
		content.WriteString("\n")
	}

	for idx := m.scrollOffset; idx < endIdx; idx++ {
		content.WriteString(components.RenderLightRow(m.lights[idx], idx == m.selectedIndex, contentWidth))
		content.WriteString("\n")
	}

	if endIdx < len(m.lights) {
		content.WriteString(styles.StyleTextMuted.Render(fmt.Sprintf("  ↓ %d more below", len(m.lights)-endIdx)))
		content.WriteString("\n")
	}

	if len(m.lights) == 0 {
		if m.loading {
			content.WriteString(fmt.Sprintf("  %s Loading lights...", m.spinner.View()))
		} else {
			content.WriteString(styles.StyleTextMuted.Render("  No lights found"))
		}
		content.WriteString("\n")
	}

	contentHeight := max(m.height-4, 3)
	contentStyle := lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight)

	if showPanelNow {
		contentStyle = contentStyle.Width(contentWidth)
		panel := components.RenderLightPanel(m.SelectedLight(), panelWidth)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, contentStyle.Render(content.String()), "  ", panel))
	} else {
		b.WriteString(contentStyle.Render(content.String()))
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m MainModel) renderStatusBar() string {
	if text, ok := m.Status(); ok {
		if m.statusErr {
			return styles.StyleError.Render(text)
		}
		return styles.StyleSuccess.Render(text)
	}
	if m.loading && len(m.lights) > 0 {
		return styles.StyleTextMuted.Render(m.spinner.View() + " refreshing")
	}
	return styles.StyleTextMuted.Render(fmt.Sprintf("%d/%d lights on", models.CountOn(m.lights), len(m.lights)))
}

func (m MainModel) renderHelp() string {
	keys := []string{
		styles.StyleHelpKey.Render("↑↓") + " nav",
		styles.StyleHelpKey.Render("space") + " toggle",
		styles.StyleHelpKey.Render("←→") + " dim",
		styles.StyleHelpKey.Render("+/-") + " temp",
		styles.StyleHelpKey.Render("s") + " scenes",
		styles.StyleHelpKey.Render("R") + " refresh",
		styles.StyleHelpKey.Render("?") + " help",
		styles.StyleHelpKey.Render("q") + " quit",
	}

	// For narrow terminals, show fewer keys
	if m.width < 60 {
		keys = []string{
			styles.StyleHelpKey.Render("↑↓") + " nav",
			styles.StyleHelpKey.Render("space") + " toggle",
			styles.StyleHelpKey.Render("?") + " help",
			styles.StyleHelpKey.Render("q") + " quit",
		}
	}

	return styles.StyleHelp.Render(strings.Join(keys, "  "))
}

// Commands

func (m MainModel) setPowerCmd(client api.GatewayClient, light *models.Light, on bool) tea.Cmd {
	id, name := light.ID, light.Name
	return func() tea.Msg {
		if client == nil {
			return nil
		}
		err := client.SetPower(m.ctx, id, on)
		return messages.CommandResultMsg{Action: fmt.Sprintf("%s: power", name), Err: err}
	}
}

func (m MainModel) setBrightnessCmd(client api.GatewayClient, light *models.Light, brightness uint8) tea.Cmd {
	id, name := light.ID, light.Name
	return func() tea.Msg {
		if client == nil {
			return nil
		}
		err := client.SetBrightness(m.ctx, id, brightness)
		return messages.CommandResultMsg{Action: fmt.Sprintf("%s: brightness", name), Err: err}
	}
}

func (m MainModel) setColorCmd(client api.GatewayClient, light *models.Light, ct models.ColorTemp) tea.Cmd {
	id, name := light.ID, light.Name
	return func() tea.Msg {
		if client == nil {
			return nil
		}
		err := client.SetColor(m.ctx, id, ct.Hex)
		return messages.CommandResultMsg{Action: fmt.Sprintf("%s: %s", name, ct.Name), Err: err}
	}
}
