package render

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// DropShadow synthesizes a soft shadow from an image's own alpha.
//
// The silhouette is stamped with itself as the mask, so its alpha is
// a*a/255 of the source alpha a. Opacity is carried for callers that
// describe the shadow but does not change the result.
type DropShadow struct {
	Offset  image.Point
	Blur    int
	Opacity float64
	Color   RGB
}

// Apply returns src with the shadow drawn beneath it. The result has
// the same size as src; shadow that falls outside it is cropped.
func (s DropShadow) Apply(src image.Image) *image.NRGBA {
	img := imaging.Clone(src)
	w, h := img.Rect.Dx(), img.Rect.Dy()

	// Room for the blur to spread without clipping.
	grow := s.Blur * 2
	canvas := image.NewNRGBA(image.Rect(0, 0, w+2*grow, h+2*grow))

	silhouette := image.NewNRGBA(img.Rect)
	for i := 0; i < len(silhouette.Pix); i += 4 {
		silhouette.Pix[i] = s.Color.R
		silhouette.Pix[i+1] = s.Color.G
		silhouette.Pix[i+2] = s.Color.B
		silhouette.Pix[i+3] = selfMasked(img.Pix[i+3])
	}
	at := image.Pt(grow+s.Offset.X, grow+s.Offset.Y)
	draw.Draw(canvas, silhouette.Rect.Add(at), silhouette, image.Point{}, draw.Over)

	blurred := imaging.Blur(canvas, float64(s.Blur))
	origin := image.Pt(grow, grow)
	draw.Draw(blurred, img.Rect.Add(origin), img, image.Point{}, draw.Over)

	return imaging.Crop(blurred, img.Rect.Add(origin))
}

// selfMasked returns the alpha left after pasting a pixel of alpha a
// onto a transparent canvas through a mask of the same alpha.
func selfMasked(a uint8) uint8 {
	t := uint32(a)*uint32(a) + 128
	return uint8((t + t>>8) >> 8)
}
