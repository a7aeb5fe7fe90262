package messages

import (
	"github.com/angristan/frostlux/internal/models"
)

// LightsFetchedMsg contains a snapshot of every light, or the reason the
// refresh failed
type LightsFetchedMsg struct {
	Lights []*models.Light
	Err    error
}

// CommandResultMsg reports the outcome of a single light command
type CommandResultMsg struct {
	// Human readable summary, e.g. "Kitchen: 80%"
	Action string
	Err    error
}

// ErrorMsg indicates an error occurred
type ErrorMsg struct {
	Err error
}

// ShowScenesMsg requests showing the scene picker
type ShowScenesMsg struct{}

// HideScenesMsg requests hiding the scene picker
type HideScenesMsg struct{}

// ShowHelpMsg requests showing the key reference
type ShowHelpMsg struct{}

// HideHelpMsg requests hiding the key reference
type HideHelpMsg struct{}

// ApplySceneMsg requests applying a preset scene to all lights
type ApplySceneMsg struct {
	Scene models.Scene
}

// SceneAppliedMsg reports how a scene went
type SceneAppliedMsg struct {
	Scene   models.Scene
	Applied int
	Err     error
}

// RefreshMsg requests a data refresh
type RefreshMsg struct{}

// RefreshTickMsg fires on the background refresh interval
type RefreshTickMsg struct{}

// StatusExpiredMsg asks for a redraw once a status message is stale
type StatusExpiredMsg struct{}
