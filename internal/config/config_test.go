package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("config", "c", "", "")
	flags.StringP("engine", "e", DefaultEngine, "")
	flags.String("css-dir", DefaultCSSDir, "")
	flags.String("js-dir", DefaultJSDir, "")
	flags.StringSlice("exclude", nil, "")
	flags.BoolP("quiet", "q", false, "")
	flags.Bool("dry-run", false, "")
	return flags
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "shrink.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir, "", nil)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, DefaultCSSDir, cfg.CSSDir)
	assert.Equal(t, DefaultJSDir, cfg.JSDir)
	assert.Equal(t, DefaultEngine, cfg.Engine)
	assert.Empty(t, cfg.Exclude)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.DryRun)
	assert.Empty(t, cfg.File)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `css_dir: assets/css
js_dir: assets/js
engine: esbuild
exclude:
  - vendor/**
  - "*.bundle.js"
quiet: true
`)

	cfg, err := Load(dir, "", nil)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "assets/css", cfg.CSSDir)
	assert.Equal(t, "assets/js", cfg.JSDir)
	assert.Equal(t, "esbuild", cfg.Engine)
	assert.Equal(t, []string{"vendor/**", "*.bundle.js"}, cfg.Exclude)
	assert.True(t, cfg.Quiet)
}

func TestLoadPrefersYAMLOverYML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shrink.yml"), []byte("engine: tdewolff\n"), 0644))

	cfg, err := Load(dir, "", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shrink.yml"), cfg.File)
	assert.Equal(t, "tdewolff", cfg.Engine)

	path := writeConfig(t, dir, "engine: esbuild\n")
	cfg, err = Load(dir, "", nil)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "esbuild", cfg.Engine)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	path := writeConfig(t, other, "engine: tdewolff\n")

	cfg, err := Load(dir, path, nil)
	require.NoError(t, err)
	assert.Equal(t, "tdewolff", cfg.Engine)
	assert.Equal(t, path, cfg.File)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "engine: esbuild\ncss_dir: styles\n")

	t.Setenv("SHRINK_ENGINE", "tdewolff")
	t.Setenv("SHRINK_EXCLUDE", "a.css, b.js")

	cfg, err := Load(dir, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "tdewolff", cfg.Engine)
	assert.Equal(t, "styles", cfg.CSSDir)
	assert.Equal(t, []string{"a.css", "b.js"}, cfg.Exclude)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "css_dir: styles\njs_dir: scripts\n")
	t.Setenv("SHRINK_ENGINE", "tdewolff")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--engine", "esbuild", "--js-dir", "src", "--dry-run", "--exclude", "x.js"}))

	cfg, err := Load(dir, "", flags)
	require.NoError(t, err)
	assert.Equal(t, "esbuild", cfg.Engine)
	assert.Equal(t, "styles", cfg.CSSDir)
	assert.Equal(t, "src", cfg.JSDir)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, []string{"x.js"}, cfg.Exclude)
}

func TestLoadUnchangedFlagsKeepFileValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "engine: esbuild\n")

	flags := newFlags()
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load(dir, "", flags)
	require.NoError(t, err)
	assert.Equal(t, "esbuild", cfg.Engine)
}

func TestResolveDir(t *testing.T) {
	cfg := &Config{Root: "/site"}
	assert.Equal(t, filepath.Join("/site", "css"), cfg.ResolveDir("css"))
	assert.Equal(t, "/abs/js", cfg.ResolveDir("/abs/js"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a, b", " ", "c"}))
	assert.Equal(t, []string{}, splitList(nil))
}
