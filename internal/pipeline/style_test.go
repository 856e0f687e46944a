package pipeline

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestStylesRenderOpaqueSquares(t *testing.T) {
	logo := imaging.New(30, 20, color.NRGBA{255, 255, 255, 128})
	for _, style := range []Style{Fallback(), Full()} {
		for _, px := range []int{1, 16, 64} {
			img := style.Render(logo, px)
			if img.Rect != image.Rect(0, 0, px, px) {
				t.Errorf("%s %d: bounds %v", style.Name(), px, img.Rect)
			}
			if !img.Opaque() {
				t.Errorf("%s %d: not opaque", style.Name(), px)
			}
		}
	}
}

func TestFallbackCornerIsBackground(t *testing.T) {
	s := Fallback()
	img := s.Render(imaging.New(10, 10, color.NRGBA{255, 0, 0, 255}), 64)
	top := s.Background.Top
	if got := img.RGBAAt(0, 0); got != (color.RGBA{top.R, top.G, top.B, 255}) {
		t.Errorf("(0,0) = %+v, want top color %+v", got, top)
	}
	bottom := s.Background.Bottom
	if got := img.RGBAAt(0, 63); got != (color.RGBA{bottom.R, bottom.G, bottom.B, 255}) {
		t.Errorf("(0,63) = %+v, want bottom color %+v", got, bottom)
	}
}

func TestFullShadowScalesWithSize(t *testing.T) {
	s := Full()
	tests := []struct {
		px, off, blur int
	}{
		{16, 0, 0},
		{64, 1, 1},
		{512, 10, 12},
		{1024, 20, 25},
	}
	for _, tt := range tests {
		d := s.Shadow(tt.px)
		if d.Offset != image.Pt(tt.off, tt.off) || d.Blur != tt.blur {
			t.Errorf("Shadow(%d) = %+v, want offset %d blur %d", tt.px, d, tt.off, tt.blur)
		}
	}
}
