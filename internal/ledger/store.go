// Package ledger keeps a history of generator runs and the digests of
// the renditions each run produced.
package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Run is one generator invocation.
type Run struct {
	ID        int64
	Timestamp time.Time
	Pipeline  string
	OutputDir string
	Icns      string // container path, "" when not packed
	IcnsError string // packer failure message, "" on success
	Files     []File
}

// File is one rendition written by a run.
type File struct {
	Filename string
	Pixels   int
	Digest   string
}

// Store abstracts ledger storage.
type Store interface {
	// Record saves run and its files and returns the new run ID.
	Record(run Run) (int64, error)
	// Previous returns the digests (by filename) of the most recent run
	// of pipeline into outputDir. A missing run yields an empty map.
	Previous(pipeline, outputDir string) (map[string]string, error)
	// Runs returns up to limit runs, newest first. 0 = all.
	Runs(limit int) ([]Run, error)
	// Clean removes runs older than days and returns how many were removed.
	// days <= 0 removes nothing.
	Clean(days int) (int, error)

	Path() string
	Close() error
}

// Digest returns the hex SHA-256 of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
