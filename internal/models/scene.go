package models

import "strings"

// Scene is a preset applied to every light that is not excluded from it
type Scene int

const (
	SceneAllOn Scene = iota
	SceneAllOff
	SceneMovie
	SceneBright
	SceneCozy
	SceneNight
	SceneEvening
	SceneReading
	SceneGoodMorning
)

// SceneSettings is the state a scene writes to each light
type SceneSettings struct {
	On         bool
	Brightness uint8
	Color      string
}

type sceneInfo struct {
	key      string
	name     string
	shortcut string
	settings SceneSettings
	aliases  []string
}

var sceneTable = map[Scene]sceneInfo{
	SceneAllOn:       {"on", "All On", "a", SceneSettings{true, 254, ColorCold.Hex}, []string{"allon", "all-on"}},
	SceneAllOff:      {"off", "All Off", "o", SceneSettings{false, 0, ColorCold.Hex}, []string{"alloff", "all-off"}},
	SceneMovie:       {"movie", "Movie", "m", SceneSettings{true, 30, ColorNeutral.Hex}, []string{"film"}},
	SceneBright:      {"bright", "Bright", "b", SceneSettings{true, 254, ColorCold.Hex}, []string{"ljus"}},
	SceneCozy:        {"cozy", "Cozy", "c", SceneSettings{true, 127, ColorNeutral.Hex}, []string{"mysig"}},
	SceneNight:       {"night", "Night", "n", SceneSettings{true, 15, ColorNeutral.Hex}, []string{"natt"}},
	SceneEvening:     {"evening", "Evening", "e", SceneSettings{true, 150, ColorNeutral.Hex}, []string{"kväll", "kvall"}},
	SceneReading:     {"reading", "Reading", "r", SceneSettings{true, 200, ColorCold.Hex}, []string{"läsning", "lasning"}},
	SceneGoodMorning: {"morning", "Good Morning", "g", SceneSettings{true, 180, ColorCold.Hex}, []string{"good-morning", "morgon"}},
}

// AllScenes lists scenes in display order
func AllScenes() []Scene {
	return []Scene{
		SceneAllOn, SceneAllOff, SceneMovie, SceneBright, SceneCozy,
		SceneNight, SceneEvening, SceneReading, SceneGoodMorning,
	}
}

// Key is the scene's config and CLI name
func (s Scene) Key() string { return sceneTable[s].key }

// Name is the scene's display name
func (s Scene) Name() string { return sceneTable[s].name }

// Shortcut is the TUI key that applies the scene
func (s Scene) Shortcut() string { return sceneTable[s].shortcut }

// Settings returns what the scene writes to each light
func (s Scene) Settings() SceneSettings { return sceneTable[s].settings }

func (s Scene) String() string { return s.Name() }

// ParseScene resolves a CLI name or alias, case-insensitively
func ParseScene(name string) (Scene, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range AllScenes() {
		info := sceneTable[s]
		if info.key == name {
			return s, true
		}
		for _, alias := range info.aliases {
			if alias == name {
				return s, true
			}
		}
	}
	return 0, false
}

// SceneByShortcut finds the scene bound to a TUI key
func SceneByShortcut(key string) (Scene, bool) {
	for _, s := range AllScenes() {
		if sceneTable[s].shortcut == key {
			return s, true
		}
	}
	return 0, false
}

// Apply writes the scene's settings to a local light snapshot. Brightness
// and color are only touched when the scene turns the light on.
func (s Scene) Apply(l *Light) {
	settings := s.Settings()
	l.On = settings.On
	if settings.On {
		l.Brightness = settings.Brightness
		l.Color = settings.Color
	}
}
