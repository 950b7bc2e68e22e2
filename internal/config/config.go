// Package config loads shrink settings from defaults, a YAML file,
// SHRINK_ environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	DefaultCSSDir = "css"
	DefaultJSDir  = "js"
	DefaultEngine = "regex"

	// EnvPrefix is stripped from environment variables: SHRINK_CSS_DIR -> css_dir
	EnvPrefix = "SHRINK_"
)

// FileNames are looked up in the root directory when no config file is given
var FileNames = []string{"shrink.yaml", "shrink.yml"}

// Config holds the settings for one minification run
type Config struct {
	// Root is the directory being processed. It is not read from any source.
	Root string `koanf:"-"`

	// CSSDir and JSDir are relative to Root unless absolute
	CSSDir string `koanf:"css_dir"`
	JSDir  string `koanf:"js_dir"`

	// Engine names the minification backend (regex, esbuild, tdewolff)
	Engine string `koanf:"engine"`

	// Exclude holds glob patterns (supports * and **) for files to skip
	Exclude []string `koanf:"exclude"`

	Quiet  bool `koanf:"quiet"`
	DryRun bool `koanf:"dry_run"`

	// File is the config file that was loaded, if any
	File string `koanf:"-"`
}

func findFile(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load builds a Config for root.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// cfgFile may be empty, in which case shrink.yaml or shrink.yml in root is used if present.
// Only flags that were explicitly set override other sources.
func Load(root, cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"css_dir": DefaultCSSDir,
		"js_dir":  DefaultJSDir,
		"engine":  DefaultEngine,
		"exclude": []string{},
		"quiet":   false,
		"dry_run": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile == "" {
		cfgFile = findFile(root)
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.Root = root
	cfg.File = cfgFile
	cfg.Exclude = splitList(cfg.Exclude)

	return &cfg, nil
}

// splitList flattens comma-separated entries, as given by SHRINK_EXCLUDE=a,b
func splitList(items []string) []string {
	result := []string{}
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}

// ResolveDir returns dir joined to Root unless it is absolute
func (c *Config) ResolveDir(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.Root, dir)
}
