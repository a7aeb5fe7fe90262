package models

import (
	"math"
	"sort"
)

// MaxBrightness is the brightest level the gateway accepts
const MaxBrightness = 254

// Light represents a Trådfri light as seen by the UI
type Light struct {
	// Instance identifier from the gateway
	ID uint64
	// User-friendly name
	Name string
	// Current on/off state
	On bool
	// Brightness level (0-254)
	Brightness uint8
	// Color temperature as a hex triplet, e.g. "f1e0b5" (empty if unknown)
	Color string
	// Whether the gateway can currently reach the light
	Reachable bool
}

// ClampBrightness limits v to the range the gateway accepts
func ClampBrightness(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > MaxBrightness {
		return MaxBrightness
	}
	return uint8(v)
}

// BrightnessPct returns the brightness as a percentage (0-100)
func (l *Light) BrightnessPct() int {
	return int(math.Round(float64(l.Brightness) / MaxBrightness * 100))
}

// AdjustBrightness moves brightness by delta, clamped to [0,254].
// A light dimmed to zero is off, anything brighter is on.
func (l *Light) AdjustBrightness(delta int) uint8 {
	l.Brightness = ClampBrightness(int(l.Brightness) + delta)
	l.On = l.Brightness > 0
	return l.Brightness
}

// ColorTempLabel returns "cold", "neutral", "warm" or "" if unknown
func (l *Light) ColorTempLabel() string {
	return ColorTempLabel(l.Color)
}

// Clone creates a copy of the light
func (l *Light) Clone() *Light {
	clone := *l
	return &clone
}

// SortByName orders lights alphabetically, falling back to ID for ties
func SortByName(lights []*Light) {
	sort.SliceStable(lights, func(i, j int) bool {
		if lights[i].Name == lights[j].Name {
			return lights[i].ID < lights[j].ID
		}
		return lights[i].Name < lights[j].Name
	})
}

// CountOn returns how many lights are on
func CountOn(lights []*Light) int {
	n := 0
	for _, l := range lights {
		if l.On {
			n++
		}
	}
	return n
}
