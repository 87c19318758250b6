package colour

import "testing"

func TestHexFormat(t *testing.T) {
	c := RGB{R: 0x1a, G: 0x2b, B: 0x3c}
	if got := c.Hex(); got != "#1A2B3C" {
		t.Fatalf("got %q, want #1A2B3C", got)
	}
}

func TestRGBHSVRoundTrip(t *testing.T) {
	cases := []RGB{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{120, 60, 200},
	}
	for _, c := range cases {
		hsv := RGBToHSV(c)
		back := hsv.ToRGB()
		if absDiff(int(c.R), int(back.R)) > 1 || absDiff(int(c.G), int(back.G)) > 1 || absDiff(int(c.B), int(back.B)) > 1 {
			t.Errorf("RGB->HSV->RGB mismatch for %+v: got %+v", c, back)
		}
	}
}

func TestRGBLabRoundTrip(t *testing.T) {
	cases := []RGB{{10, 20, 30}, {200, 100, 50}, {255, 255, 255}, {0, 0, 0}}
	for _, c := range cases {
		lab := RGBToLab(c)
		back := lab.ToRGB()
		if absDiff(int(c.R), int(back.R)) > 2 || absDiff(int(c.G), int(back.G)) > 2 || absDiff(int(c.B), int(back.B)) > 2 {
			t.Errorf("RGB->Lab->RGB mismatch for %+v: got %+v", c, back)
		}
	}
}

func TestClampValue(t *testing.T) {
	hsv := HSV{H: 10, S: 0.5, V: 0.9}
	clamped := hsv.ClampValue(140.0/255, 170.0/255)
	if clamped.V > 170.0/255 || clamped.V < 140.0/255 {
		t.Fatalf("clamp failed: %v", clamped.V)
	}
}

func TestParseOrderBy(t *testing.T) {
	cases := map[string]OrderBy{
		"h": Hue, "hue": Hue,
		"s": Saturation, "saturation": Saturation,
		"v": Brightness, "b": Brightness, "brightness": Brightness,
		"sem": Semantic, "semantic": Semantic,
	}
	for s, want := range cases {
		got, ok := ParseOrderBy(s)
		if !ok || got != want {
			t.Errorf("ParseOrderBy(%q) = %v,%v want %v,true", s, got, ok, want)
		}
	}
	if _, ok := ParseOrderBy("bogus"); ok {
		t.Fatal("expected ParseOrderBy to reject unknown tag")
	}
}

func TestOrderPaletteSemantic(t *testing.T) {
	// Centroids {10,125,55,235,305,175} against targets
	// [360,120,60,240,300,180] must order to [10,125,55,235,305,175]:
	// target 360's circular distance to centroid 10 is 10 (not the linear
	// 350), so it correctly claims centroid 10 first rather than 305.
	hsv := []HSV{
		{H: 10}, {H: 125}, {H: 55}, {H: 235}, {H: 305}, {H: 175},
	}
	ordered := OrderPalette(hsv, Semantic)
	if len(ordered) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(ordered))
	}
	want := []float64{10, 125, 55, 235, 305, 175}
	for i, c := range ordered {
		if c.H != want[i] {
			t.Fatalf("semantic order = %v, want hues in order %v", hueSlice(ordered), want)
		}
	}
}

func hueSlice(hsv []HSV) []float64 {
	out := make([]float64, len(hsv))
	for i, c := range hsv {
		out[i] = c.H
	}
	return out
}

func TestAddMissingColorsPadsWithWhite(t *testing.T) {
	hsv := []HSV{{H: 10, S: 0.5, V: 0.5}}
	padded := addMissingColors(hsv)
	if len(padded) != 6 {
		t.Fatalf("expected padding to 6, got %d", len(padded))
	}
	for _, c := range padded[1:] {
		if c.S != 0 || c.V != 1 {
			t.Fatalf("padding entries should be pure white HSV, got %+v", c)
		}
	}
}

func TestMergeRGB(t *testing.T) {
	got := mergeRGB(RGB{0, 0, 0}, RGB{255, 0, 0})
	// (4*0+255)/5 = 51
	if got.R != 51 || got.G != 0 || got.B != 0 {
		t.Fatalf("got %+v, want {51 0 0}", got)
	}
}

func TestPrepareColorsProducesSixteenSlotPalette(t *testing.T) {
	hsv := []HSV{
		{H: 0, S: 1, V: 1}, {H: 60, S: 1, V: 1}, {H: 120, S: 1, V: 1},
		{H: 180, S: 1, V: 1}, {H: 240, S: 1, V: 1}, {H: 300, S: 1, V: 1},
	}
	p := prepareColors(hsv, 4)
	if p[0] != p[8] || p[7] != p[15] {
		t.Fatalf("expected second 8 slots to duplicate first 8: %+v", p)
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
