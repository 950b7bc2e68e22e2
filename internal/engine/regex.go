package engine

import (
	"fmt"

	"shrink/internal/minifier"
)

// Regex is the pattern-substitution engine. It never fails on valid kinds.
type Regex struct{}

func (Regex) Name() string { return "regex" }

func (Regex) Minify(kind Kind, source string) (string, error) {
	switch kind {
	case CSS:
		return minifier.MinifyCSS(source), nil
	case JS:
		return minifier.MinifyJS(source), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
}
