package pipeline

import (
	"image"

	"github.com/convertify/iconkit/internal/render"
)

// Style renders one rendition of an icon from a decoded logo.
type Style interface {
	Name() string
	Render(logo image.Image, px int) *image.RGBA
}

// FallbackStyle draws the logo on a flat-bottomed vertical gradient.
type FallbackStyle struct {
	Background   render.VerticalGradient
	LogoFraction float64
}

// Fallback returns the style used for the fallback appiconset. The
// colors approximate the Display P3 values of the Icon Composer source.
func Fallback() FallbackStyle {
	return FallbackStyle{
		Background: render.VerticalGradient{
			Top:    render.RGB{R: 57, G: 62, B: 62},
			Bottom: render.RGB{R: 34, G: 36, B: 43},
			Stop:   0.7,
		},
		LogoFraction: 0.70,
	}
}

func (FallbackStyle) Name() string { return "fallback" }

func (s FallbackStyle) Render(logo image.Image, px int) *image.RGBA {
	bg := s.Background.Render(px)
	mark := render.FitLogo(logo, px, s.LogoFraction)
	return render.Flatten(render.Composite(bg, mark, render.Center(px, mark)))
}

// FullStyle is the layered look: corner gradient, inner glow, and a
// logo lifted off the background by a soft drop shadow.
type FullStyle struct {
	Background    render.CornerGradient
	Glow          render.Glow
	LogoFraction  float64
	ShadowOffset  float64 // fraction of the icon size, both axes
	ShadowBlur    float64 // fraction of the icon size
	ShadowOpacity float64 // recorded on the shadow, does not change the output
}

// Full returns the style used for the full icon set.
func Full() FullStyle {
	return FullStyle{
		Background: render.CornerGradient{
			TL: render.RGB{R: 20, G: 45, B: 55},
			TR: render.RGB{R: 35, G: 40, B: 70},
			BL: render.RGB{R: 25, G: 50, B: 65},
			BR: render.RGB{R: 55, G: 30, B: 75},
		},
		Glow:          render.Glow{Color: render.RGB{R: 100, G: 180, B: 180}, Intensity: 0.15},
		LogoFraction:  0.80,
		ShadowOffset:  0.02,
		ShadowBlur:    0.025,
		ShadowOpacity: 0.07,
	}
}

func (FullStyle) Name() string { return "full" }

// Shadow returns the drop shadow parameters for a px-sized icon.
func (s FullStyle) Shadow(px int) render.DropShadow {
	off := int(float64(px) * s.ShadowOffset)
	return render.DropShadow{
		Offset:  image.Pt(off, off),
		Blur:    int(float64(px) * s.ShadowBlur),
		Opacity: s.ShadowOpacity,
	}
}

func (s FullStyle) Render(logo image.Image, px int) *image.RGBA {
	bg := render.Composite(s.Background.Render(px), s.Glow.Render(px), image.Point{})
	mark := s.Shadow(px).Apply(render.SquareLogo(logo, px, s.LogoFraction))
	return render.Flatten(render.Composite(bg, mark, render.Center(px, mark)))
}
