package packer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/convertify/iconkit/internal/catalog"
	"github.com/convertify/iconkit/internal/paths"
	"github.com/convertify/iconkit/internal/render"
	"github.com/jackmordaunt/icns/v3"
)

// NativePacker encodes the largest rendition of the iconset with a pure
// Go .icns encoder, which derives the smaller members itself.
type NativePacker struct{}

func (NativePacker) Name() string { return Native }

func (NativePacker) Pack(ctx context.Context, iconsetDir, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	src, err := largestIn(iconsetDir)
	if err != nil {
		return err
	}
	img, err := render.LoadImage(src)
	if err != nil {
		return fmt.Errorf("icns: %w", err)
	}

	tmp := dest + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, paths.FilePerm)
	if err != nil {
		return err
	}
	if err := icns.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("icns encode: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dest)
}

// largestIn returns the path of the biggest catalog rendition present
// in dir.
func largestIn(dir string) (string, error) {
	var present []catalog.Size
	for _, s := range catalog.MacOS {
		if paths.Exists(filepath.Join(dir, s.Filename)) {
			present = append(present, s)
		}
	}
	best, ok := catalog.Largest(present)
	if !ok {
		return "", fmt.Errorf("icns: no icon renditions in %s", dir)
	}
	return filepath.Join(dir, best.Filename), nil
}
