package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestFlattenIsOpaque(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	src.SetNRGBA(1, 1, color.NRGBA{255, 0, 0, 128})
	src.SetNRGBA(2, 2, color.NRGBA{0, 255, 0, 255})

	out := Flatten(src)
	if !out.Opaque() {
		t.Fatal("flattened image has transparent pixels")
	}
	if got := out.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("transparent pixel = %+v, want black", got)
	}
	if got := out.RGBAAt(2, 2); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("opaque pixel = %+v", got)
	}
}

func TestFlattenRebasesBounds(t *testing.T) {
	src := imaging.New(4, 4, color.NRGBA{9, 9, 9, 255}).SubImage(image.Rect(1, 1, 3, 3))
	out := Flatten(src)
	if out.Rect != image.Rect(0, 0, 2, 2) {
		t.Errorf("bounds = %v", out.Rect)
	}
}

func TestEncodePNGWritesRGB(t *testing.T) {
	out := Flatten(imaging.New(4, 4, color.NRGBA{1, 2, 3, 40}))
	var buf bytes.Buffer
	if err := EncodePNG(&buf, out); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	// 8-byte signature, 4-byte length, "IHDR", width, height, bit depth,
	// then the color type at offset 25. 2 = truecolor without alpha.
	if len(b) < 26 || string(b[12:16]) != "IHDR" {
		t.Fatalf("unexpected PNG header % x", b[:min(len(b), 26)])
	}
	if b[25] != 2 {
		t.Errorf("color type = %d, want 2 (RGB)", b[25])
	}
}

func TestEncodePNGDeterministic(t *testing.T) {
	img := Flatten(CornerGradient{TL: RGB{1, 2, 3}, TR: RGB{200, 0, 0}, BL: RGB{0, 200, 0}, BR: RGB{0, 0, 200}}.Render(64))
	var a, b bytes.Buffer
	if err := EncodePNG(&a, img); err != nil {
		t.Fatal(err)
	}
	if err := EncodePNG(&b, img); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("encoding the same image twice produced different bytes")
	}
}
