package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme is a color palette for the whole interface
type Theme struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color // titles, selection
	Success    lipgloss.Color // lights on, connected
	Error      lipgloss.Color
	Warm       lipgloss.Color // lit bulbs, brightness fill
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Dimmed     lipgloss.Color
}

// Frost palettes
var (
	Dark = Theme{
		Name:       "dark",
		Background: lipgloss.Color("#1A2B38"),
		Foreground: lipgloss.Color("#F0F8FF"),
		Primary:    lipgloss.Color("#7EB4E8"), // Ice blue
		Success:    lipgloss.Color("#6FE094"),
		Error:      lipgloss.Color("#FF6B7A"),
		Warm:       lipgloss.Color("#FFE680"),
		Accent:     lipgloss.Color("#7DC8F5"),
		Border:     lipgloss.Color("#4A5D73"),
		Dimmed:     lipgloss.Color("#4A5D73"),
	}

	Light = Theme{
		Name:       "light",
		Background: lipgloss.Color("#F0F8FF"),
		Foreground: lipgloss.Color("#0A0F14"),
		Primary:    lipgloss.Color("#2E5A90"),
		Success:    lipgloss.Color("#0D7545"),
		Error:      lipgloss.Color("#C81F32"),
		Warm:       lipgloss.Color("#B37218"),
		Accent:     lipgloss.Color("#1880B0"),
		Border:     lipgloss.Color("#B8D4F1"),
		Dimmed:     lipgloss.Color("#2A3F55"),
	}
)

// ResolveTheme maps a configured theme name to a palette. "auto" (and
// anything unrecognised) asks the terminal for its background color, so
// call it once before the program takes over the terminal.
func ResolveTheme(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light", "frostglow":
		return Light
	case "dark", "deep-cracked-ice":
		return Dark
	}
	if lipgloss.HasDarkBackground() {
		return Dark
	}
	return Light
}

// Current palette colors, set by Apply
var (
	ColorPrimary    lipgloss.Color
	ColorAccent     lipgloss.Color
	ColorText       lipgloss.Color
	ColorTextMuted  lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorError      lipgloss.Color
	ColorLightOn    lipgloss.Color
	ColorLightOff   lipgloss.Color
)

// Styles for various UI components, set by Apply
var (
	StyleHeader      lipgloss.Style
	StyleHeaderTitle lipgloss.Style

	StyleLightName    lipgloss.Style
	StyleLightNameDim lipgloss.Style
	StyleSelected     lipgloss.Style
	StyleStatusOn     lipgloss.Style
	StyleStatusOff    lipgloss.Style
	StyleUnreachable  lipgloss.Style

	StyleBrightnessBarEmpty lipgloss.Style

	StylePanel      lipgloss.Style
	StyleModal      lipgloss.Style
	StyleModalTitle lipgloss.Style

	StyleSceneItem         lipgloss.Style
	StyleSceneItemSelected lipgloss.Style

	StyleHelp    lipgloss.Style
	StyleHelpKey lipgloss.Style

	StyleSpinner   lipgloss.Style
	StyleError     lipgloss.Style
	StyleSuccess   lipgloss.Style
	StyleTextMuted lipgloss.Style
	StylePrimary   lipgloss.Style
)

var current = Dark

func init() {
	Apply(Dark)
}

// Current returns the palette last passed to Apply
func Current() Theme {
	return current
}

// Apply rebuilds every style from t. It is meant to be called once at
// startup, before the first render.
func Apply(t Theme) {
	current = t

	ColorPrimary = t.Primary
	ColorAccent = t.Accent
	ColorText = t.Foreground
	ColorTextMuted = t.Dimmed
	ColorBackground = t.Background
	ColorSurface = t.Border
	ColorSuccess = t.Success
	ColorError = t.Error
	ColorLightOn = t.Warm
	ColorLightOff = t.Border

	StyleHeader = lipgloss.NewStyle().
		Background(ColorSurface)

	StyleHeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Padding(0, 1)

	StyleLightName = lipgloss.NewStyle().
		Foreground(ColorText)

	StyleLightNameDim = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	StyleSelected = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	StyleStatusOn = lipgloss.NewStyle().
		Foreground(ColorLightOn).
		Bold(true)

	StyleStatusOff = lipgloss.NewStyle().
		Foreground(ColorLightOff)

	StyleUnreachable = lipgloss.NewStyle().
		Foreground(ColorError)

	StyleBrightnessBarEmpty = lipgloss.NewStyle().
		Foreground(ColorSurface)

	StylePanel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)

	StyleModal = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)

	StyleModalTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	StyleSceneItem = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	StyleSceneItemSelected = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Padding(0, 1)

	StyleHelp = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	StyleHelpKey = lipgloss.NewStyle().
		Foreground(ColorPrimary)

	StyleSpinner = lipgloss.NewStyle().
		Foreground(ColorPrimary)

	StyleError = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	StyleSuccess = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)

	StyleTextMuted = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	StylePrimary = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
}

// GetBrightnessColor returns the color of segment (1-based) in a bar of
// total segments, fading from the surface color to the lit color.
func GetBrightnessColor(segment, total int) lipgloss.Color {
	if total <= 1 {
		return ColorLightOn
	}
	from, err1 := colorful.Hex(string(ColorSurface))
	to, err2 := colorful.Hex(string(ColorLightOn))
	if err1 != nil || err2 != nil {
		return ColorLightOn
	}
	t := float64(segment-1) / float64(total-1)
	return lipgloss.Color(from.BlendLab(to, 0.3+0.7*t).Clamped().Hex())
}
