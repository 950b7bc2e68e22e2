package builder

import (
	"path/filepath"
	"strings"

	"shrink/internal/engine"
)

// Result describes one minified file
type Result struct {
	Source       string
	Target       string
	Kind         engine.Kind
	OriginalSize int64
	MinifiedSize int64
}

// Savings returns the size reduction as a percentage of the original size.
// An empty source reports 0.
func (r Result) Savings() float64 {
	return savings(r.OriginalSize, r.MinifiedSize)
}

// Summary totals the results of a build
type Summary struct {
	Files        int
	OriginalSize int64
	MinifiedSize int64
}

// Add records a result in the summary
func (s *Summary) Add(r Result) {
	s.Files++
	s.OriginalSize += r.OriginalSize
	s.MinifiedSize += r.MinifiedSize
}

// Savings returns the overall size reduction as a percentage
func (s *Summary) Savings() float64 {
	return savings(s.OriginalSize, s.MinifiedSize)
}

func savings(original, minified int64) float64 {
	if original == 0 {
		return 0
	}
	return float64(original-minified) / float64(original) * 100
}

// TargetPath returns the output path for src: style.css -> style.min.css
func TargetPath(src string) string {
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + ".min" + ext
}

// IsMinified reports whether path already follows the name.min.ext convention
func IsMinified(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(strings.TrimSuffix(base, filepath.Ext(base)), ".min")
}

// IsSource reports whether path is a stylesheet or script that a build would minify
func IsSource(path string) bool {
	return engine.KindFromPath(path) != engine.Unknown && !IsMinified(path)
}
