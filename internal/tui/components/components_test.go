package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/frostlux/internal/models"
)

func TestRenderBrightnessBarWidth(t *testing.T) {
	tests := []struct {
		pct int
		on  bool
	}{
		{0, true},
		{1, true},
		{50, true},
		{100, true},
		{80, false},
	}

	for _, tt := range tests {
		bar := RenderBrightnessBar(tt.pct, tt.on, 12)
		if w := lipgloss.Width(bar); w != 12 {
			t.Errorf("RenderBrightnessBar(%d, %v) width = %d, want 12", tt.pct, tt.on, w)
		}
	}

	if RenderBrightnessBar(50, true, 0) != "" {
		t.Error("Expected empty bar for zero width")
	}
}

func TestRenderLightRow(t *testing.T) {
	light := &models.Light{ID: 1, Name: "Kitchen", On: true, Brightness: 127, Color: models.ColorWarm.Hex, Reachable: true}

	row := RenderLightRow(light, true, 80)
	for _, want := range []string{"Kitchen", "50%", "warm"} {
		if !strings.Contains(row, want) {
			t.Errorf("Expected row to contain %q, got %q", want, row)
		}
	}

	light.Reachable = false
	if row := RenderLightRow(light, false, 80); !strings.Contains(row, "offline") {
		t.Errorf("Expected unreachable light to be marked, got %q", row)
	}
}

func TestPad(t *testing.T) {
	if got := pad("Hall", 6); got != "Hall  " {
		t.Errorf("pad short = %q", got)
	}
	got := pad("Living Room Ceiling", 10)
	if lipgloss.Width(got) != 10 || !strings.HasSuffix(got, "…") {
		t.Errorf("pad long = %q", got)
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader(60, "10.0.0.2", 2, 5, false)
	if !strings.Contains(h, "FrostLux") || !strings.Contains(h, "2/5 on") {
		t.Errorf("unexpected header %q", h)
	}
	if h := RenderHeader(60, "", 0, 0, false); !strings.Contains(h, "Disconnected") {
		t.Errorf("expected disconnected header, got %q", h)
	}
}

func TestRenderLightPanel(t *testing.T) {
	light := &models.Light{ID: 65537, Name: "Desk", On: false, Brightness: 254, Color: models.ColorCold.Hex, Reachable: true}
	panel := RenderLightPanel(light, 40)
	for _, want := range []string{"Desk", "Off", "100%", "cold", "65537"} {
		if !strings.Contains(panel, want) {
			t.Errorf("Expected panel to contain %q", want)
		}
	}
	if !strings.Contains(RenderLightPanel(nil, 40), "No selection") {
		t.Error("Expected placeholder for nil light")
	}
}
