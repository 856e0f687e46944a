package render

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Flatten composites img onto opaque black. Every pixel of the result
// has alpha 0xff, so the PNG encoder writes it without an alpha channel.
func Flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, image.Black, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Over)
	return dst
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}
