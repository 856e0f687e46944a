package render

import (
	"image"
	"math"
)

// Glow is a radial tint that fades out quadratically from the center
// of the icon to its edge.
type Glow struct {
	Color     RGB
	Intensity float64
}

// Alpha returns the glow opacity of the ring with radius r when the
// outermost ring has radius maxR.
func (g Glow) Alpha(r, maxR int) uint8 {
	if maxR <= 0 || r > maxR {
		return 0
	}
	f := 1 - float64(r)/float64(maxR)
	return uint8(int(255 * g.Intensity * (f * f)))
}

// Render returns a transparent size×size image with the glow drawn as
// concentric filled circles, outermost first. A pixel takes the alpha
// of the innermost circle covering it; circles never accumulate.
func (g Glow) Render(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	center := size / 2
	maxR := size / 2
	if maxR == 0 {
		return img
	}

	alpha := make([]uint8, maxR+1)
	for r := 1; r <= maxR; r++ {
		alpha[r] = g.Alpha(r, maxR)
	}

	for y := 0; y < size; y++ {
		dy := y - center
		for x := 0; x < size; x++ {
			dx := x - center
			r := coveringRadius(dx*dx + dy*dy)
			if r > maxR || alpha[r] == 0 {
				continue
			}
			i := img.PixOffset(x, y)
			p := img.Pix[i : i+4 : i+4]
			p[0], p[1], p[2], p[3] = g.Color.R, g.Color.G, g.Color.B, alpha[r]
		}
	}
	return img
}

// coveringRadius returns the smallest circle radius (at least 1) whose
// disc contains a point at squared distance d2 from the center.
func coveringRadius(d2 int) int {
	r := int(math.Sqrt(float64(d2)))
	for r*r < d2 {
		r++
	}
	for r > 1 && (r-1)*(r-1) >= d2 {
		r--
	}
	if r < 1 {
		r = 1
	}
	return r
}
