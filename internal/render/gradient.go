// Package render holds the raster steps used to build an app icon:
// gradient backgrounds, the inner glow, logo placement, the drop shadow
// and the final flatten to an opaque image.
//
// Channel arithmetic truncates instead of rounding so a rerun produces
// byte-identical PNGs.
package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// NRGBA returns c with the given alpha.
func (c RGB) NRGBA(a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// VerticalGradient interpolates from Top at row 0 to Bottom at the
// fractional height Stop; rows below Stop are filled with Bottom.
type VerticalGradient struct {
	Top    RGB
	Bottom RGB
	Stop   float64
}

// CornerGradient interpolates bilinearly between four corner colors.
type CornerGradient struct {
	TL, TR RGB
	BL, BR RGB
}

// fraction maps index i of a size-long axis onto [0, 1].
func fraction(i, size int) float64 {
	if size <= 1 {
		return 0
	}
	return float64(i) / float64(size-1)
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(int(float64(a) + float64(int(b)-int(a))*t))
}

func mix(a, b RGB, t float64) RGB {
	return RGB{lerp(a.R, b.R, t), lerp(a.G, b.G, t), lerp(a.B, b.B, t)}
}

// Row returns the color of row y in a size-tall gradient.
func (g VerticalGradient) Row(y, size int) RGB {
	ty := fraction(y, size)
	if g.Stop <= 0 || ty > g.Stop {
		return g.Bottom
	}
	return mix(g.Top, g.Bottom, ty/g.Stop)
}

// Render returns an opaque size×size image of the gradient.
func (g VerticalGradient) Render(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		c := g.Row(y, size)
		row := image.Rect(0, y, size, y+1)
		draw.Draw(img, row, image.NewUniform(c.NRGBA(0xff)), image.Point{}, draw.Src)
	}
	return img
}

// At returns the color at (x, y) in a size×size gradient.
func (g CornerGradient) At(x, y, size int) RGB {
	tx := fraction(x, size)
	top := mix(g.TL, g.TR, tx)
	bottom := mix(g.BL, g.BR, tx)
	return mix(top, bottom, fraction(y, size))
}

// Render returns an opaque size×size image of the gradient. The edge
// colors only depend on x, so they are computed once per column.
func (g CornerGradient) Render(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	top := make([]RGB, size)
	bottom := make([]RGB, size)
	for x := 0; x < size; x++ {
		tx := fraction(x, size)
		top[x] = mix(g.TL, g.TR, tx)
		bottom[x] = mix(g.BL, g.BR, tx)
	}
	for y := 0; y < size; y++ {
		ty := fraction(y, size)
		row := img.Pix[y*img.Stride : y*img.Stride+size*4]
		for x := 0; x < size; x++ {
			c := mix(top[x], bottom[x], ty)
			p := row[x*4 : x*4+4 : x*4+4]
			p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 0xff
		}
	}
	return img
}
