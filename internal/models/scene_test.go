package models

import "testing"

func TestParseScene(t *testing.T) {
	tests := []struct {
		input string
		want  Scene
		ok    bool
	}{
		{"movie", SceneMovie, true},
		{"FILM", SceneMovie, true},
		{"all-on", SceneAllOn, true},
		{"off", SceneAllOff, true},
		{"kväll", SceneEvening, true},
		{"good-morning", SceneGoodMorning, true},
		{" night ", SceneNight, true},
		{"disco", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseScene(tt.input)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseScene(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSceneKeysRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range AllScenes() {
		got, ok := ParseScene(s.Key())
		if !ok || got != s {
			t.Errorf("ParseScene(%q) did not return %v", s.Key(), s)
		}
		if seen[s.Shortcut()] {
			t.Errorf("duplicate shortcut %q", s.Shortcut())
		}
		seen[s.Shortcut()] = true

		if bySc, ok := SceneByShortcut(s.Shortcut()); !ok || bySc != s {
			t.Errorf("SceneByShortcut(%q) = %v", s.Shortcut(), bySc)
		}
	}
}

func TestSceneApply(t *testing.T) {
	l := &Light{On: true, Brightness: 200, Color: ColorCold.Hex}
	SceneMovie.Apply(l)
	if !l.On || l.Brightness != 30 || l.Color != ColorNeutral.Hex {
		t.Errorf("movie scene gave %+v", l)
	}

	// Turning off keeps the previous brightness and color
	SceneAllOff.Apply(l)
	if l.On || l.Brightness != 30 || l.Color != ColorNeutral.Hex {
		t.Errorf("off scene gave %+v", l)
	}
}
