package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/angristan/frostlux/internal/api"
	"github.com/angristan/frostlux/internal/config"
	"github.com/angristan/frostlux/internal/models"
	"github.com/angristan/frostlux/internal/tui/messages"
	"github.com/angristan/frostlux/internal/tui/screens"
)

// Screen represents the current screen state
type Screen int

const (
	ScreenMain Screen = iota
	ScreenScenes
	ScreenHelp
)

// Model is the main application model
type Model struct {
	// Configuration
	config *config.Config
	logger *slog.Logger

	// Gateway connection
	client api.GatewayClient

	// Optimistic edits not yet confirmed by a refresh
	pending *PendingTracker

	// A fetch is in flight; ticks arriving meanwhile are dropped
	refreshing bool
	// The in-flight fetch was requested by the user
	manualRefresh bool

	// Current screen
	screen Screen

	// Screen models
	mainScreen   screens.MainModel
	scenesScreen screens.ScenesModel
	helpScreen   screens.HelpModel

	// Window size
	width  int
	height int

	// Context for cancellation
	ctx    context.Context
	cancel context.CancelFunc
}

// NewModel creates a new application model. Init starts the first fetch.
func NewModel(client api.GatewayClient, cfg *config.Config, logger *slog.Logger) Model {
	ctx, cancel := context.WithCancel(context.Background())
	if logger == nil {
		logger = slog.Default()
	}

	return Model{
		config:       cfg,
		logger:       logger,
		client:       client,
		pending:      NewPendingTracker(),
		refreshing:   true,
		screen:       ScreenMain,
		mainScreen:   screens.NewMainModel(ctx, client.Host()),
		scenesScreen: screens.NewScenesModel(),
		helpScreen:   screens.NewHelpModel(),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("FrostLux"),
		m.mainScreen.Init(),
		m.fetchLightsCmd(),
		m.refreshTickCmd(),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.mainScreen.SetSize(msg.Width, msg.Height)
		m.scenesScreen.SetSize(msg.Width, msg.Height)
		m.helpScreen.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Global key handlers
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}

	case messages.LightsFetchedMsg:
		manual := m.manualRefresh
		m.refreshing = false
		m.manualRefresh = false

		if msg.Err != nil {
			m.logger.Error("refreshing lights", "error", msg.Err)
			m.mainScreen.SetLoading(false)
			cmds = append(cmds, m.mainScreen.SetStatus(fmt.Sprintf("Refresh failed: %v", msg.Err), true))
			break
		}

		m.pending.Cleanup()
		m.mainScreen.SetLights(m.pending.Reconcile(m.mainScreen.Lights(), msg.Lights))
		m.logger.Debug("lights refreshed", "count", len(msg.Lights), "pending", m.pending.Len())
		if manual {
			cmds = append(cmds, m.mainScreen.SetStatus("Refreshed", false))
		}

	case messages.RefreshTickMsg:
		if !m.refreshing {
			m.refreshing = true
			cmds = append(cmds, m.fetchLightsCmd())
		}
		cmds = append(cmds, m.refreshTickCmd())

	case messages.RefreshMsg:
		m.manualRefresh = true
		if !m.refreshing {
			m.refreshing = true
			cmds = append(cmds, m.fetchLightsCmd())
		}

	case messages.CommandResultMsg:
		if msg.Err != nil {
			m.logger.Warn("light command failed", "action", msg.Action, "error", msg.Err)
			cmds = append(cmds, m.mainScreen.SetStatus(fmt.Sprintf("%s failed: %v", msg.Action, msg.Err), true))
		} else {
			m.logger.Debug("light command done", "action", msg.Action)
		}

	case messages.ErrorMsg:
		m.logger.Error("unexpected error", "error", msg.Err)
		cmds = append(cmds, m.mainScreen.SetStatus(msg.Err.Error(), true))

	case messages.ApplySceneMsg:
		m.screen = ScreenMain
		cmds = append(cmds, m.applyScene(msg.Scene))
		return m, tea.Batch(cmds...)

	case messages.SceneAppliedMsg:
		if msg.Err != nil {
			m.logger.Warn("scene partly applied", "scene", msg.Scene.Key(), "applied", msg.Applied, "error", msg.Err)
			cmds = append(cmds, m.mainScreen.SetStatus(
				fmt.Sprintf("%s: %d lights updated, some failed", msg.Scene.Name(), msg.Applied), true))
		} else {
			m.logger.Info("scene applied", "scene", msg.Scene.Key(), "applied", msg.Applied)
		}

	case messages.ShowScenesMsg:
		m.screen = ScreenScenes
		m.scenesScreen.Reset()
		return m, nil

	case messages.HideScenesMsg:
		m.screen = ScreenMain
		return m, nil

	case messages.ShowHelpMsg:
		m.screen = ScreenHelp
		return m, nil

	case messages.HideHelpMsg:
		m.screen = ScreenMain
		return m, nil
	}

	// Keys go to the screen on top; everything else keeps the main
	// screen's spinner running underneath the modals
	_, isKey := msg.(tea.KeyMsg)
	switch {
	case isKey && m.screen == ScreenScenes:
		var cmd tea.Cmd
		m.scenesScreen, cmd = m.scenesScreen.Update(msg)
		cmds = append(cmds, cmd)

	case isKey && m.screen == ScreenHelp:
		var cmd tea.Cmd
		m.helpScreen, cmd = m.helpScreen.Update(msg)
		cmds = append(cmds, cmd)

	default:
		var cmd tea.Cmd
		m.mainScreen, cmd = m.mainScreen.Update(msg, m.client, m.addPending)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the current screen
func (m Model) View() string {
	switch m.screen {
	case ScreenMain:
		return m.mainScreen.View()
	case ScreenScenes:
		return m.scenesScreen.View()
	case ScreenHelp:
		return m.helpScreen.View()
	default:
		return "Unknown screen"
	}
}

// addPending adapts the tracker to the screen's callback
func (m Model) addPending(lightID uint64, field string, value any, dir screens.Direction) {
	m.pending.AddWithDirection(lightID, Field(field), value, Direction(dir))
}

// applyScene updates the shown lights right away and sends the scene to
// the gateway in the background.
func (m *Model) applyScene(scene models.Scene) tea.Cmd {
	settings := scene.Settings()
	skip := m.config.Scenes.IsExcluded

	lights := m.mainScreen.Lights()
	snapshot := make([]*models.Light, 0, len(lights))
	for _, l := range lights {
		snapshot = append(snapshot, l.Clone())
		if skip(scene, l.Name) {
			continue
		}
		scene.Apply(l)
		m.pending.Add(l.ID, FieldOn, settings.On)
		if settings.On {
			m.pending.Add(l.ID, FieldBrightness, int(settings.Brightness))
			m.pending.Add(l.ID, FieldColor, settings.Color)
		}
	}

	return tea.Batch(
		m.mainScreen.SetStatus("Scene: "+scene.Name(), false),
		m.applySceneCmd(scene, snapshot),
	)
}

// fetchLightsCmd creates a command that takes a fresh snapshot of every light
func (m Model) fetchLightsCmd() tea.Cmd {
	return func() tea.Msg {
		lights, err := m.client.ListLights(m.ctx)
		return messages.LightsFetchedMsg{Lights: lights, Err: err}
	}
}

func (m Model) refreshTickCmd() tea.Cmd {
	return tea.Tick(m.config.RefreshEvery(), func(time.Time) tea.Msg {
		return messages.RefreshTickMsg{}
	})
}

// applySceneCmd creates a command that writes a scene to every light
func (m Model) applySceneCmd(scene models.Scene, lights []*models.Light) tea.Cmd {
	return func() tea.Msg {
		n, err := api.ApplyScene(m.ctx, m.client, lights, scene, m.config.Scenes.IsExcluded, m.logger)
		return messages.SceneAppliedMsg{Scene: scene, Applied: n, Err: err}
	}
}
