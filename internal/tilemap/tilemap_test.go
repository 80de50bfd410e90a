package tilemap

import "testing"

func TestPanelPixels(t *testing.T) {
	p := NewPanel(26, 26, 24)
	w, h := p.Pixels()
	if w != 624 || h != 624 {
		t.Fatalf("Pixels() = %dx%d, want 624x624", w, h)
	}
}

func TestLandTypesHaveDistinctColors(t *testing.T) {
	all := []LandType{LandNone, LandTree, LandIce, LandBrick, LandIron, LandWater, LandGrass}
	seen := map[[4]uint8]LandType{}
	for _, l := range all {
		c := l.Color()
		key := [4]uint8{c.R, c.G, c.B, c.A}
		if prev, ok := seen[key]; ok {
			t.Fatalf("%v and %v share color %v", prev, l, c)
		}
		seen[key] = l
		if l.String() == "unknown" {
			t.Fatalf("land %d has no name", l)
		}
	}
	if LandType(99).String() != "unknown" || LandType(99).Color() != LandNone.Color() {
		t.Fatalf("unknown land type should fall back")
	}
}

func TestPaletteOrder(t *testing.T) {
	want := []LandType{LandTree, LandIce, LandIron, LandBrick}
	if len(Palette) != len(want) {
		t.Fatalf("palette has %d entries, want %d", len(Palette), len(want))
	}
	for i := range want {
		if Palette[i] != want[i] {
			t.Fatalf("palette[%d] = %v, want %v", i, Palette[i], want[i])
		}
	}
}
