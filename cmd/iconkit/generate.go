package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/convertify/iconkit/internal/catalog"
	"github.com/convertify/iconkit/internal/config"
	"github.com/convertify/iconkit/internal/ledger"
	"github.com/convertify/iconkit/internal/logging"
	"github.com/convertify/iconkit/internal/manifest"
	"github.com/convertify/iconkit/internal/packer"
	"github.com/convertify/iconkit/internal/paths"
	"github.com/convertify/iconkit/internal/pipeline"
)

// selectPacker is replaced in tests.
var selectPacker = packer.Select

// loadConfig reads the config file, applies the environment and then
// the command-line overrides.
func loadConfig(opts options) (config.Config, error) {
	root := opts.root
	if root == "" {
		root = os.Getenv("ICONKIT_ROOT")
	}
	cfg, _, err := config.Load(opts.configPath, root)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if opts.root != "" {
		cfg.Root = opts.root
	}
	if opts.packer != "" {
		cfg.Packer = opts.packer
	}
	if opts.noLedger {
		cfg.NoLedger = true
	}
	if opts.strict {
		cfg.Strict = true
	}
	return cfg, nil
}

// pipelineFor returns the resolved paths for name with flag overrides.
func pipelineFor(cfg config.Config, name string, opts options) config.Pipeline {
	p := cfg.Fallback
	if name == "full" {
		p = cfg.Full
	}
	if opts.logo != "" {
		p.Logo = opts.logo
	}
	if opts.out != "" {
		p.Output = opts.out
	}
	if opts.icns != "" {
		p.Icns = opts.icns
	}
	if name != "full" || opts.noIcns {
		p.Icns = ""
	}
	return cfg.Resolve(p)
}

func styleFor(name string) pipeline.Style {
	if name == "full" {
		return pipeline.Full()
	}
	return pipeline.Fallback()
}

func openLedger(cfg config.Config, log zerolog.Logger) ledger.Store {
	if cfg.NoLedger {
		return nil
	}
	path := cfg.LedgerPath
	if path == "" {
		path = ledger.DefaultPath()
	}
	store, err := ledger.NewSQLiteStore(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("ledger unavailable, continuing without history")
		return nil
	}
	return store
}

func generateCmd(name string, opts options, stdout, stderr io.Writer, color bool) int {
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	log := logging.New(stderr, cfg.LogLevel, color)
	p := pipelineFor(cfg, name, opts)
	job := pipeline.Job{Logo: p.Logo, Shadow: p.Shadow, OutputDir: p.Output, Icns: p.Icns}
	if name != "full" {
		job.Shadow = ""
	}

	g := &pipeline.Generator{
		Style:   styleFor(name),
		Catalog: catalog.Default(),
		Out:     stdout,
		Log:     log,
	}
	// Asset problems are reported before the banner.
	if err := g.Preflight(job); err != nil {
		fmt.Fprintf(stderr, "Error: Logo not found at %s\n", job.Logo)
		return 1
	}
	// Already warned about; Run would repeat it.
	job.Shadow = ""
	if p.Icns != "" {
		pk, err := selectPacker(cfg.Packer)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		g.Packer = pk
		log.Debug().Str("packer", pk.Name()).Msg("selected packer")
	}
	if store := openLedger(cfg, log); store != nil {
		defer store.Close()
		g.Ledger = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	b := newBanner(stdout, color)
	b.rule()
	b.title(headline(name))
	b.rule()
	fmt.Fprintf(stdout, "Logo: %s\n", job.Logo)
	fmt.Fprintf(stdout, "Output: %s\n", job.OutputDir)
	fmt.Fprintln(stdout)

	res, err := g.Run(ctx, job)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout)
	b.rule()
	if res.PackErr != nil {
		b.warn("Icons generated, .icns packing failed")
	} else {
		b.success(fmt.Sprintf("%s icons generated successfully!", display(name)))
	}
	b.rule()
	if changed := res.Changed(); len(changed) > 0 {
		fmt.Fprintf(stdout, "%d of %d renditions changed since the last run.\n", len(changed), len(res.Files))
	}
	if name == "full" {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Next steps:")
		fmt.Fprintln(stdout, "1. Open Xcode and verify the icons in Assets.xcassets")
		fmt.Fprintln(stdout, "2. Rebuild the app to apply the new icons")
	}

	if res.PackErr != nil && cfg.Strict {
		return 1
	}
	return 0
}

func headline(name string) string {
	if name == "full" {
		return "Generating macOS Big Sur+ style app icons"
	}
	return "Generating fallback AppIcon.appiconset"
}

func display(name string) string {
	if name == "full" {
		return "App"
	}
	return "Fallback"
}

func manifestCmd(opts options, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	p := pipelineFor(cfg, "fallback", opts)
	if err := os.MkdirAll(p.Output, paths.DirPerm); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	path, err := manifest.Write(p.Output, catalog.Default())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Updated: %s\n", path)
	return 0
}

func catalogCmd(stdout io.Writer) int {
	fmt.Fprintf(stdout, "%-24s %-8s %-6s %s\n", "FILE", "SIZE", "SCALE", "PIXELS")
	for _, s := range catalog.Default() {
		fmt.Fprintf(stdout, "%-24s %-8s %-6s %d\n", s.Filename, s.SizeLabel(), s.ScaleLabel(), s.PixelSize())
	}
	return 0
}
