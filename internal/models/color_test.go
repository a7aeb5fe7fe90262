package models

import (
	"testing"
)

func TestColorTempLabel(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"f5faf6", "cold"},
		{"f1e0b5", "neutral"},
		{"efd275", "warm"},
		{"EFD275", "warm"},
		{"f5f0e0", "cold"},
		{"efd000", "warm"},
		{"abcdef", "neutral"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ColorTempLabel(tt.hex); got != tt.want {
			t.Errorf("ColorTempLabel(%q) = %q, want %q", tt.hex, got, tt.want)
		}
	}
}

func TestNextColorTemp(t *testing.T) {
	tests := []struct {
		name   string
		hex    string
		warmer bool
		want   ColorTemp
	}{
		{"cold to neutral", "f5faf6", true, ColorNeutral},
		{"neutral to warm", "f1e0b5", true, ColorWarm},
		{"warm stays warm", "efd275", true, ColorWarm},
		{"warm to neutral", "efd275", false, ColorNeutral},
		{"cold stays cold", "f5faf6", false, ColorCold},
		{"unknown warmer jumps to warm", "123456", true, ColorWarm},
		{"unknown colder jumps to cold", "", false, ColorCold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextColorTemp(tt.hex, tt.warmer); got != tt.want {
				t.Errorf("NextColorTemp(%q, %v) = %v, want %v", tt.hex, tt.warmer, got, tt.want)
			}
		})
	}
}

func TestHexToRGB(t *testing.T) {
	r, g, b, ok := HexToRGB("f1e0b5")
	if !ok {
		t.Fatal("expected f1e0b5 to parse")
	}
	if r != 0xf1 || g != 0xe0 || b != 0xb5 {
		t.Errorf("HexToRGB(f1e0b5) = %d,%d,%d", r, g, b)
	}

	if _, _, _, ok := HexToRGB("#efd275"); !ok {
		t.Error("expected leading # to be accepted")
	}
	if _, _, _, ok := HexToRGB("nothex"); ok {
		t.Error("expected invalid hex to fail")
	}
}

func TestSwatch(t *testing.T) {
	if got := Swatch(ColorWarm.Hex, 254, false); got != "#4a4a5a" {
		t.Errorf("off light swatch = %s, want #4a4a5a", got)
	}

	bright := Swatch(ColorWarm.Hex, 254, true)
	if len(bright) != 7 || bright[0] != '#' {
		t.Fatalf("Swatch returned %q, want #rrggbb", bright)
	}

	// Dimmer lights render darker
	br, bg, bb, _ := HexToRGB(bright)
	dr, dg, db, _ := HexToRGB(Swatch(ColorWarm.Hex, 10, true))
	if int(dr)+int(dg)+int(db) >= int(br)+int(bg)+int(bb) {
		t.Errorf("dim swatch should be darker than bright swatch")
	}

	// Unknown colors still render
	if got := Swatch("zzz", 100, true); len(got) != 7 {
		t.Errorf("Swatch with invalid hex = %q", got)
	}
}
