package models

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorTemp is one of the white spectrum presets the gateway understands
type ColorTemp struct {
	Name string
	Hex  string
}

// Color temperature presets, coldest first
var (
	ColorCold    = ColorTemp{Name: "cold", Hex: "f5faf6"}
	ColorNeutral = ColorTemp{Name: "neutral", Hex: "f1e0b5"}
	ColorWarm    = ColorTemp{Name: "warm", Hex: "efd275"}

	ColorTemps = []ColorTemp{ColorCold, ColorNeutral, ColorWarm}
)

// ColorTempLabel maps a hex color to its preset name. Unknown colors are
// classified by prefix the way the gateway's own presets drift.
func ColorTempLabel(hex string) string {
	hex = strings.ToLower(hex)
	for _, ct := range ColorTemps {
		if ct.Hex == hex {
			return ct.Name
		}
	}
	switch {
	case hex == "":
		return ""
	case strings.HasPrefix(hex, "f5"):
		return ColorCold.Name
	case strings.HasPrefix(hex, "efd"):
		return ColorWarm.Name
	default:
		return ColorNeutral.Name
	}
}

// NextColorTemp steps one preset warmer or colder from hex. An unknown
// color jumps to the warmest or coldest end.
func NextColorTemp(hex string, warmer bool) ColorTemp {
	idx := -1
	for i, ct := range ColorTemps {
		if strings.EqualFold(ct.Hex, hex) {
			idx = i
			break
		}
	}

	last := len(ColorTemps) - 1
	switch {
	case idx < 0 && warmer:
		return ColorTemps[last]
	case idx < 0:
		return ColorTemps[0]
	case warmer:
		return ColorTemps[min(idx+1, last)]
	default:
		return ColorTemps[max(idx-1, 0)]
	}
}

// HexToRGB parses a hex triplet with or without a leading '#'
func HexToRGB(hex string) (r, g, b uint8, ok bool) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0, false
	}
	r, g, b = c.RGB255()
	return r, g, b, true
}

// Swatch returns a "#rrggbb" preview of hex as it would look at the given
// brightness. Off or unknown lights render as a dim gray.
func Swatch(hex string, brightness uint8, on bool) string {
	const off = "#4a4a5a"
	if !on {
		return off
	}
	r, g, b, ok := HexToRGB(hex)
	if !ok {
		r, g, b, _ = HexToRGB(ColorNeutral.Hex)
	}
	base := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	dark := colorful.Color{R: 0.1, G: 0.1, B: 0.12}

	// Keep some color even at the dimmest level
	t := 0.25 + 0.75*float64(brightness)/MaxBrightness
	return dark.BlendLab(base, t).Clamped().Hex()
}
