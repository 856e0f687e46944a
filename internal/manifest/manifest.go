// Package manifest writes the Contents.json sidecar of an
// AppIcon.appiconset.
package manifest

import (
	"encoding/json"
	"path/filepath"

	"github.com/convertify/iconkit/internal/catalog"
	"github.com/convertify/iconkit/internal/paths"
)

// FileName is the manifest's name inside the appiconset directory.
const FileName = "Contents.json"

// Image is one rendition entry. Field order is the on-disk key order.
type Image struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

// Info is the authorship block Xcode expects.
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// Contents is the whole manifest document.
type Contents struct {
	Images []Image `json:"images"`
	Info   Info    `json:"info"`
}

// Build derives the manifest from the catalog. It does not look at the
// files on disk.
func Build(sizes []catalog.Size) Contents {
	c := Contents{
		Images: make([]Image, 0, len(sizes)),
		Info:   Info{Author: "xcode", Version: 1},
	}
	for _, s := range sizes {
		c.Images = append(c.Images, Image{
			Filename: s.Filename,
			Idiom:    "mac",
			Scale:    s.ScaleLabel(),
			Size:     s.SizeLabel(),
		})
	}
	return c
}

// Marshal encodes c with two-space indentation and no trailing newline.
func Marshal(c Contents) ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// Write writes the manifest for sizes into dir and returns its path.
func Write(dir string, sizes []catalog.Size) (string, error) {
	data, err := Marshal(Build(sizes))
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName)
	if err := paths.AtomicWrite(path, data); err != nil {
		return "", err
	}
	return path, nil
}
