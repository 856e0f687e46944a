package render

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// ErrEmptyImage is returned when a decoded source image has no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// LoadImage decodes the image at path and converts it to NRGBA.
func LoadImage(path string) (*image.NRGBA, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decoding %s: %w", path, ErrEmptyImage)
	}
	return imaging.Clone(img), nil
}

// FitLogo scales logo so its longest side is size*fraction pixels,
// keeping the aspect ratio. Both dimensions are truncated and at least 1.
func FitLogo(logo image.Image, size int, fraction float64) *image.NRGBA {
	box := int(float64(size) * fraction)
	b := logo.Bounds()
	aspect := float64(b.Dx()) / float64(b.Dy())

	var w, h int
	if aspect > 1 {
		w = box
		h = int(float64(box) / aspect)
	} else {
		h = box
		w = int(float64(box) * aspect)
	}
	return imaging.Resize(logo, max(w, 1), max(h, 1), imaging.Lanczos)
}

// SquareLogo scales logo to a size*fraction square, ignoring its aspect ratio.
func SquareLogo(logo image.Image, size int, fraction float64) *image.NRGBA {
	side := max(int(float64(size)*fraction), 1)
	return imaging.Resize(logo, side, side, imaging.Lanczos)
}

// Center returns the offset that centers img on a size×size canvas.
func Center(size int, img image.Image) image.Point {
	b := img.Bounds()
	return image.Pt((size-b.Dx())/2, (size-b.Dy())/2)
}

// Composite draws fg over bg at the given offset, using fg's alpha as
// the blend mask. bg must be opaque.
func Composite(bg, fg image.Image, at image.Point) *image.NRGBA {
	return imaging.Overlay(bg, fg, at, 1.0)
}
