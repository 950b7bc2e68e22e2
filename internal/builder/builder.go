package builder

import (
	"fmt"
	"os"
	"path/filepath"

	"shrink/internal/config"
	"shrink/internal/engine"
	"shrink/internal/ui"
)

// Builder minifies the stylesheets and scripts under a site root
type Builder struct {
	Config *config.Config
	Engine engine.Engine
	Quiet  bool
}

// New creates a new Builder for cfg using eng
func New(cfg *config.Config, eng engine.Engine) *Builder {
	return &Builder{
		Config: cfg,
		Engine: eng,
		Quiet:  cfg.Quiet,
	}
}

// Build minifies every discovered file and writes name.min.ext next to it.
// It stops at the first file that cannot be read, minified or written.
func (b *Builder) Build() (*Summary, error) {
	files, err := b.Discover()
	if err != nil {
		return nil, err
	}

	if !b.Quiet {
		ui.PrintKeyValue("Root", "   "+b.Config.Root)
		if b.Config.File != "" {
			ui.PrintKeyValue("Config", " "+b.Config.File)
		}
		ui.PrintKeyValue("Engine", " "+b.Engine.Name())
		fmt.Println()
		if len(files) == 0 {
			ui.PrintWarning("No CSS or JS files found under %s", b.Config.Root)
		}
	}

	summary := &Summary{}
	for _, src := range files {
		if !b.Quiet {
			ui.PrintInfo("Minifying %s -> %s", filepath.Base(src), filepath.Base(TargetPath(src)))
		}

		result, err := b.MinifyFile(src)
		if err != nil {
			return summary, err
		}
		summary.Add(result)

		if !b.Quiet {
			ui.PrintSavings(result.OriginalSize, result.MinifiedSize, result.Savings())
		}
	}

	return summary, nil
}

// Discover lists the source files to minify: *.css in the CSS directory and
// *.js in the JS directory, without descending into subdirectories. Files
// already named *.min.css or *.min.js and files matching an exclude pattern
// are skipped. A missing directory yields no files.
func (b *Builder) Discover() ([]string, error) {
	var files []string

	dirs := []struct {
		dir  string
		kind engine.Kind
	}{
		{b.Config.ResolveDir(b.Config.CSSDir), engine.CSS},
		{b.Config.ResolveDir(b.Config.JSDir), engine.JS},
	}

	for _, d := range dirs {
		info, err := os.Stat(d.dir)
		if err != nil || !info.IsDir() {
			continue
		}

		// Listed rather than globbed so metacharacters in the root are taken literally
		entries, err := os.ReadDir(d.dir)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", d.dir, err)
		}

		for _, entry := range entries {
			name := entry.Name()
			if filepath.Ext(name) != d.kind.Ext() || IsMinified(name) {
				continue
			}

			match := filepath.Join(d.dir, name)
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}

			rel, err := filepath.Rel(b.Config.Root, match)
			if err != nil {
				rel = match
			}
			if IsExcluded(rel, b.Config.Exclude) {
				continue
			}

			files = append(files, match)
		}
	}

	return files, nil
}

// MinifyFile minifies src and writes the result to TargetPath(src),
// unless the builder is configured for a dry run
func (b *Builder) MinifyFile(src string) (Result, error) {
	kind := engine.KindFromPath(src)
	result := Result{Source: src, Target: TargetPath(src), Kind: kind}

	content, err := os.ReadFile(src)
	if err != nil {
		return result, fmt.Errorf("failed to read %s: %w", src, err)
	}

	minified, err := b.Engine.Minify(kind, string(content))
	if err != nil {
		return result, fmt.Errorf("failed to minify %s: %w", src, err)
	}

	result.OriginalSize = int64(len(content))
	result.MinifiedSize = int64(len(minified))

	if b.Config.DryRun {
		return result, nil
	}

	if err := os.WriteFile(result.Target, []byte(minified), 0644); err != nil {
		return result, fmt.Errorf("failed to write %s: %w", result.Target, err)
	}

	return result, nil
}
