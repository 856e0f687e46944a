package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/convertify/iconkit/internal/paths"
)

// Default paths, relative to the project root.
const (
	DefaultAppIconSet   = "Convertify/Assets.xcassets/AppIcon.appiconset"
	DefaultFallbackLogo = "Convertify/AppIcon.icon/Assets/clean_convertify.png"
	DefaultFullLogo     = "logo_layer_converted.png"
	DefaultFullShadow   = "shadow_layer_converted.png"
	DefaultIcns         = "Convertify.app/Contents/Resources/AppIcon.icns"
	DefaultPacker       = "auto"
	DefaultLogLevel     = "warn"
)

// Pipeline holds the input and output locations of one generator.
type Pipeline struct {
	Logo   string `json:"logo,omitempty" yaml:"logo,omitempty"`
	Shadow string `json:"shadow,omitempty" yaml:"shadow,omitempty"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Icns   string `json:"icns,omitempty" yaml:"icns,omitempty"`
}

// Config holds the top-level configuration.
type Config struct {
	Root       string   `json:"root,omitempty" yaml:"root,omitempty"`
	Packer     string   `json:"packer,omitempty" yaml:"packer,omitempty"`           // "auto" | "iconutil" | "native"
	LogLevel   string   `json:"log_level,omitempty" yaml:"log_level,omitempty"`     // zerolog level name
	NoLedger   bool     `json:"no_ledger,omitempty" yaml:"no_ledger,omitempty"`     // disable run history
	LedgerPath string   `json:"ledger_path,omitempty" yaml:"ledger_path,omitempty"` // "" = data dir
	Strict     bool     `json:"strict,omitempty" yaml:"strict,omitempty"`           // packer failure fails the run
	Fallback   Pipeline `json:"fallback" yaml:"fallback"`
	Full       Pipeline `json:"full" yaml:"full"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Packer:   DefaultPacker,
		LogLevel: DefaultLogLevel,
		Fallback: Pipeline{
			Logo:   DefaultFallbackLogo,
			Output: DefaultAppIconSet,
		},
		Full: Pipeline{
			Logo:   DefaultFullLogo,
			Shadow: DefaultFullShadow,
			Output: DefaultAppIconSet,
			Icns:   DefaultIcns,
		},
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// UnmarshalYAML does the same for YAML documents.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	*c = Default()
	type Alias Config
	return value.Decode((*Alias)(c))
}

// Env lists the environment overrides. Empty values are ignored.
type Env struct {
	Root     string `env:"ICONKIT_ROOT"`
	Packer   string `env:"ICONKIT_PACKER"`
	LogLevel string `env:"ICONKIT_LOG_LEVEL"`
	Ledger   string `env:"ICONKIT_LEDGER"`
	Strict   string `env:"ICONKIT_STRICT"`
}

// ApplyEnv overlays ICONKIT_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var e Env
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if e.Root != "" {
		cfg.Root = e.Root
	}
	if e.Packer != "" {
		cfg.Packer = e.Packer
	}
	if e.LogLevel != "" {
		cfg.LogLevel = e.LogLevel
	}
	if e.Ledger != "" {
		on, err := strconv.ParseBool(e.Ledger)
		if err != nil {
			return fmt.Errorf("ICONKIT_LEDGER: %w", err)
		}
		cfg.NoLedger = !on
	}
	if e.Strict != "" {
		on, err := strconv.ParseBool(e.Strict)
		if err != nil {
			return fmt.Errorf("ICONKIT_STRICT: %w", err)
		}
		cfg.Strict = on
	}
	return nil
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty)
//  2. iconkit.json / iconkit.yaml / iconkit.yml in root
//  3. ~/.config/iconkit/iconkit.json
//
// When no file exists the defaults are returned. The second result is
// the file that was read, or "".
func Load(explicitPath, root string) (Config, string, error) {
	if explicitPath != "" {
		cfg, err := readConfig(explicitPath)
		return cfg, explicitPath, err
	}

	for _, name := range []string{paths.ConfigFileName, "iconkit.yaml", "iconkit.yml"} {
		p := filepath.Join(root, name)
		if paths.Exists(p) {
			cfg, err := readConfig(p)
			return cfg, p, err
		}
	}

	p := filepath.Join(paths.DataDir(), paths.ConfigFileName)
	if paths.Exists(p) {
		cfg, err := readConfig(p)
		return cfg, p, err
	}

	return Default(), "", nil
}

// Resolve returns p with every relative path joined to the root.
func (c Config) Resolve(p Pipeline) Pipeline {
	return Pipeline{
		Logo:   paths.Resolve(c.Root, p.Logo),
		Shadow: paths.Resolve(c.Root, p.Shadow),
		Output: paths.Resolve(c.Root, p.Output),
		Icns:   paths.Resolve(c.Root, p.Icns),
	}
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
