// Package packer turns a directory of catalog PNGs into a single .icns
// icon container.
package packer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/convertify/iconkit/internal/catalog"
	"github.com/convertify/iconkit/internal/paths"
)

// Packer packs an .iconset directory whose files follow the catalog
// naming into dest.
type Packer interface {
	Name() string
	Pack(ctx context.Context, iconsetDir, dest string) error
}

// Packer names accepted by Select.
const (
	Auto     = "auto"
	Iconutil = "iconutil"
	Native   = "native"
)

// Select returns the packer registered under name. "auto" prefers
// iconutil when it is on PATH and falls back to the native encoder.
func Select(name string) (Packer, error) {
	switch name {
	case "", Auto:
		if IconutilAvailable() {
			return IconutilPacker{}, nil
		}
		return NativePacker{}, nil
	case Iconutil:
		return IconutilPacker{}, nil
	case Native:
		return NativePacker{}, nil
	default:
		return nil, fmt.Errorf("unknown packer %q (want auto, iconutil or native)", name)
	}
}

// IconsetPath returns the staging directory used for dest:
// "AppIcon.icns" becomes "AppIcon.iconset" next to it.
func IconsetPath(dest string) string {
	return strings.TrimSuffix(dest, filepath.Ext(dest)) + ".iconset"
}

// Stage copies the catalog files found in srcDir into iconsetDir.
// Files missing from srcDir are skipped. It returns the number of
// files copied.
func Stage(srcDir, iconsetDir string, sizes []catalog.Size) (int, error) {
	if err := os.MkdirAll(iconsetDir, paths.DirPerm); err != nil {
		return 0, err
	}
	n := 0
	for _, s := range sizes {
		src := filepath.Join(srcDir, s.Filename)
		if !paths.Exists(src) {
			continue
		}
		if err := paths.CopyFile(src, filepath.Join(iconsetDir, s.Filename)); err != nil {
			return n, fmt.Errorf("staging %s: %w", s.Filename, err)
		}
		n++
	}
	return n, nil
}

// PackDir stages the PNGs of srcDir next to dest, packs them and removes
// the staging directory. On failure the staging directory is left in
// place for inspection.
func PackDir(ctx context.Context, p Packer, srcDir, dest string, sizes []catalog.Size) error {
	if err := os.MkdirAll(filepath.Dir(dest), paths.DirPerm); err != nil {
		return err
	}
	iconset := IconsetPath(dest)
	if _, err := Stage(srcDir, iconset, sizes); err != nil {
		return err
	}
	if err := p.Pack(ctx, iconset, dest); err != nil {
		return err
	}
	return os.RemoveAll(iconset)
}
