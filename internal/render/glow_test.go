package render

import "testing"

func TestGlowAlpha(t *testing.T) {
	g := Glow{Color: RGB{100, 180, 180}, Intensity: 0.15}
	tests := []struct {
		r, maxR int
		want    uint8
	}{
		{0, 8, 38}, // 255*0.15 = 38.25
		{1, 8, 29}, // 38.25 * 0.765625 = 29.28
		{4, 8, 9},  // 38.25 * 0.25 = 9.56
		{8, 8, 0},  // edge
		{9, 8, 0},  // outside
		{1, 0, 0},  // degenerate
		{256, 512, 9},
	}
	for _, tt := range tests {
		if got := g.Alpha(tt.r, tt.maxR); got != tt.want {
			t.Errorf("Alpha(%d, %d) = %d, want %d", tt.r, tt.maxR, got, tt.want)
		}
	}
}

func TestGlowRender(t *testing.T) {
	g := Glow{Color: RGB{100, 180, 180}, Intensity: 0.15}
	img := g.Render(16)

	center := img.NRGBAAt(8, 8)
	if center.A != g.Alpha(1, 8) {
		t.Errorf("center alpha = %d, want %d", center.A, g.Alpha(1, 8))
	}
	if center.R != 100 || center.G != 180 || center.B != 180 {
		t.Errorf("center color = %+v", center)
	}
	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	// Alpha never increases moving away from the center.
	prev := center.A
	for x := 9; x < 16; x++ {
		a := img.NRGBAAt(x, 8).A
		if a > prev {
			t.Errorf("alpha at x=%d is %d, greater than %d", x, a, prev)
		}
		prev = a
	}
}

func TestGlowRenderTiny(t *testing.T) {
	g := Glow{Color: RGB{100, 180, 180}, Intensity: 0.15}
	img := g.Render(1)
	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("size 1 alpha = %d, want 0", a)
	}
}

func TestCoveringRadius(t *testing.T) {
	tests := []struct{ d2, want int }{
		{0, 1},
		{1, 1},
		{2, 2},
		{4, 2},
		{5, 3},
		{9, 3},
		{10, 4},
	}
	for _, tt := range tests {
		if got := coveringRadius(tt.d2); got != tt.want {
			t.Errorf("coveringRadius(%d) = %d, want %d", tt.d2, got, tt.want)
		}
	}
}
