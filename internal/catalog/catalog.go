// Package catalog holds the fixed set of icon renditions a macOS
// AppIcon.appiconset must contain.
package catalog

import "fmt"

// Size describes one rendition: a nominal size in points, a scale
// factor and the file the rendition is stored in.
type Size struct {
	Points   int
	Scale    int
	Filename string
}

// PixelSize returns the edge length of the rendered square in pixels.
func (s Size) PixelSize() int {
	return s.Points * s.Scale
}

// ScaleLabel returns the scale as used in Contents.json (e.g. "2x").
func (s Size) ScaleLabel() string {
	return fmt.Sprintf("%dx", s.Scale)
}

// SizeLabel returns the nominal size as used in Contents.json (e.g. "16x16").
func (s Size) SizeLabel() string {
	return fmt.Sprintf("%dx%d", s.Points, s.Points)
}

// MacOS is the platform-mandated rendition list. Order matters: the
// manifest and the iconset are written in this order.
var MacOS = [...]Size{
	{16, 1, "icon_16x16.png"},
	{16, 2, "icon_16x16@2x.png"},
	{32, 1, "icon_32x32.png"},
	{32, 2, "icon_32x32@2x.png"},
	{128, 1, "icon_128x128.png"},
	{128, 2, "icon_128x128@2x.png"},
	{256, 1, "icon_256x256.png"},
	{256, 2, "icon_256x256@2x.png"},
	{512, 1, "icon_512x512.png"},
	{512, 2, "icon_512x512@2x.png"},
}

// Default returns a fresh copy of the macOS catalog.
func Default() []Size {
	out := make([]Size, len(MacOS))
	copy(out, MacOS[:])
	return out
}

// Lookup returns the entry stored under filename.
func Lookup(sizes []Size, filename string) (Size, bool) {
	for _, s := range sizes {
		if s.Filename == filename {
			return s, true
		}
	}
	return Size{}, false
}

// Largest returns the entry with the biggest pixel size. The second
// result is false for an empty list.
func Largest(sizes []Size) (Size, bool) {
	if len(sizes) == 0 {
		return Size{}, false
	}
	best := sizes[0]
	for _, s := range sizes[1:] {
		if s.PixelSize() > best.PixelSize() {
			best = s
		}
	}
	return best, true
}
