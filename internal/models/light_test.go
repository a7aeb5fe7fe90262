package models

import "testing"

func TestAdjustBrightness_Clamps(t *testing.T) {
	tests := []struct {
		name   string
		start  uint8
		delta  int
		want   uint8
		wantOn bool
	}{
		{"brighten", 100, 25, 125, true},
		{"dim", 100, -25, 75, true},
		{"clamp at top", 240, 64, 254, true},
		{"clamp at bottom", 10, -64, 0, false},
		{"exactly zero", 25, -25, 0, false},
		{"from zero", 0, 25, 25, true},
		{"huge positive", 0, 10000, 254, true},
		{"huge negative", 254, -10000, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Light{Brightness: tt.start, On: tt.start > 0}
			got := l.AdjustBrightness(tt.delta)
			if got != tt.want || l.Brightness != tt.want {
				t.Errorf("AdjustBrightness(%d) from %d = %d, want %d", tt.delta, tt.start, got, tt.want)
			}
			if l.On != tt.wantOn {
				t.Errorf("On = %v, want %v", l.On, tt.wantOn)
			}
		})
	}
}

func TestAdjustBrightness_AlwaysInRange(t *testing.T) {
	for start := 0; start <= MaxBrightness; start += 7 {
		for delta := -300; delta <= 300; delta += 13 {
			l := &Light{Brightness: uint8(start)}
			if got := l.AdjustBrightness(delta); got > MaxBrightness {
				t.Fatalf("brightness %d out of range (start %d, delta %d)", got, start, delta)
			}
		}
	}
}

func TestBrightnessPct(t *testing.T) {
	tests := []struct {
		brightness uint8
		want       int
	}{
		{0, 0},
		{127, 50},
		{254, 100},
		{25, 10},
	}
	for _, tt := range tests {
		l := &Light{Brightness: tt.brightness}
		if got := l.BrightnessPct(); got != tt.want {
			t.Errorf("BrightnessPct(%d) = %d, want %d", tt.brightness, got, tt.want)
		}
	}
}

func TestSortByName(t *testing.T) {
	lights := []*Light{
		{ID: 3, Name: "Kitchen"},
		{ID: 2, Name: "Bedroom"},
		{ID: 1, Name: "Kitchen"},
	}
	SortByName(lights)

	want := []uint64{2, 1, 3}
	for i, id := range want {
		if lights[i].ID != id {
			t.Errorf("position %d: got ID %d, want %d", i, lights[i].ID, id)
		}
	}
}

func TestClone(t *testing.T) {
	orig := &Light{ID: 1, Name: "Desk", On: true, Brightness: 100, Color: "f1e0b5"}
	clone := orig.Clone()
	clone.Brightness = 10
	clone.Color = "efd275"

	if orig.Brightness != 100 || orig.Color != "f1e0b5" {
		t.Error("modifying clone changed the original")
	}
}
