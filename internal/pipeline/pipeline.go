// Package pipeline runs a Style over the icon catalog and writes the
// appiconset: one PNG per rendition, the manifest and optionally an
// .icns container.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/convertify/iconkit/internal/catalog"
	"github.com/convertify/iconkit/internal/ledger"
	"github.com/convertify/iconkit/internal/manifest"
	"github.com/convertify/iconkit/internal/packer"
	"github.com/convertify/iconkit/internal/paths"
	"github.com/convertify/iconkit/internal/render"
)

// ErrLogoMissing is returned before any output is written when the
// required logo asset does not exist.
var ErrLogoMissing = errors.New("logo not found")

// Job names the files of one run. Shadow is optional and only checked
// for presence. Icns empty means no container is packed.
type Job struct {
	Logo      string
	Shadow    string
	OutputDir string
	Icns      string
}

// Rendition is one PNG written by a run.
type Rendition struct {
	Size    catalog.Size
	Path    string
	Digest  string
	Changed bool // differs from the previous recorded run
}

// Result summarizes a completed run. PackErr holds the packer failure,
// which does not fail the run.
type Result struct {
	Files    []Rendition
	Manifest string
	Icns     string
	PackErr  error
}

// Changed returns the renditions whose bytes differ from the previous run.
func (r *Result) Changed() []Rendition {
	var out []Rendition
	for _, f := range r.Files {
		if f.Changed {
			out = append(out, f)
		}
	}
	return out
}

// Generator renders every catalog entry with Style. Packer and Ledger
// are optional.
type Generator struct {
	Style   Style
	Catalog []catalog.Size
	Packer  packer.Packer
	Ledger  ledger.Store
	Out     io.Writer
	Log     zerolog.Logger
}

// Run executes job. Entries are processed in catalog order; a render or
// write failure aborts the run and leaves earlier files in place.
func (g *Generator) Run(ctx context.Context, job Job) (*Result, error) {
	out := g.Out
	if out == nil {
		out = io.Discard
	}

	if err := g.Preflight(job); err != nil {
		return nil, err
	}

	logo, err := render.LoadImage(job.Logo)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(job.OutputDir, paths.DirPerm); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	prev := g.previous(job.OutputDir)
	res := &Result{}
	for _, s := range g.Catalog {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		r, err := g.renderOne(logo, s, job.OutputDir)
		if err != nil {
			return res, err
		}
		if old, ok := prev[s.Filename]; ok && old != r.Digest {
			r.Changed = true
			g.Log.Info().Str("file", s.Filename).Msg("rendition changed since last run")
		}
		res.Files = append(res.Files, r)
		fmt.Fprintf(out, "Created: %s (%dx%d)\n", r.Path, s.PixelSize(), s.PixelSize())
	}

	res.Manifest, err = manifest.Write(job.OutputDir, g.Catalog)
	if err != nil {
		return res, fmt.Errorf("writing manifest: %w", err)
	}
	fmt.Fprintf(out, "Created: %s\n", res.Manifest)

	if g.Packer != nil && job.Icns != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Generating .icns file...")
		if err := g.pack(ctx, job); err != nil {
			res.PackErr = err
			fmt.Fprintf(out, "Error creating .icns: %v\n", err)
			g.Log.Error().Err(err).Str("packer", g.Packer.Name()).Msg("icns packing failed")
		} else {
			res.Icns = job.Icns
			fmt.Fprintf(out, "Created: %s\n", job.Icns)
		}
	}

	g.record(job, res)
	return res, nil
}

// Preflight checks the job's assets before anything is written. A
// missing shadow is reported first and only warns; a missing logo
// returns ErrLogoMissing.
func (g *Generator) Preflight(job Job) error {
	out := g.Out
	if out == nil {
		out = io.Discard
	}
	if job.Shadow != "" && !paths.Exists(job.Shadow) {
		fmt.Fprintf(out, "Warning: Shadow layer not found at %s\n", job.Shadow)
		fmt.Fprintln(out, "Proceeding without shadow layer...")
		g.Log.Warn().Str("path", job.Shadow).Msg("shadow layer missing")
	}
	if !paths.Exists(job.Logo) {
		return fmt.Errorf("%w at %s", ErrLogoMissing, job.Logo)
	}
	return nil
}

func (g *Generator) renderOne(logo *image.NRGBA, s catalog.Size, dir string) (Rendition, error) {
	px := s.PixelSize()
	img := g.Style.Render(logo, px)

	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		return Rendition{}, fmt.Errorf("encoding %s: %w", s.Filename, err)
	}
	path := filepath.Join(dir, s.Filename)
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return Rendition{}, fmt.Errorf("writing %s: %w", s.Filename, err)
	}
	g.Log.Debug().Str("file", s.Filename).Int("px", px).Int("bytes", buf.Len()).Msg("rendered")
	return Rendition{Size: s, Path: path, Digest: ledger.Digest(buf.Bytes())}, nil
}

// pack runs the packer, turning a panic inside it into an error.
func (g *Generator) pack(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s packer panicked: %v", g.Packer.Name(), r)
		}
	}()
	return packer.PackDir(ctx, g.Packer, job.OutputDir, job.Icns, g.Catalog)
}

func (g *Generator) previous(dir string) map[string]string {
	if g.Ledger == nil {
		return nil
	}
	prev, err := g.Ledger.Previous(g.Style.Name(), dir)
	if err != nil {
		g.Log.Warn().Err(err).Msg("ledger: reading previous run")
		return nil
	}
	return prev
}

func (g *Generator) record(job Job, res *Result) {
	if g.Ledger == nil {
		return
	}
	run := ledger.Run{
		Pipeline:  g.Style.Name(),
		OutputDir: job.OutputDir,
		Icns:      res.Icns,
	}
	if res.PackErr != nil {
		run.IcnsError = res.PackErr.Error()
	}
	for _, f := range res.Files {
		run.Files = append(run.Files, ledger.File{
			Filename: f.Size.Filename,
			Pixels:   f.Size.PixelSize(),
			Digest:   f.Digest,
		})
	}
	if _, err := g.Ledger.Record(run); err != nil {
		g.Log.Warn().Err(err).Msg("ledger: recording run")
	}
}
