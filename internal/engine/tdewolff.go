package engine

import (
	"fmt"

	"github.com/tdewolff/minify"
	"github.com/tdewolff/minify/css"
	"github.com/tdewolff/minify/js"
)

var mediaTypes = map[Kind]string{
	CSS: "text/css",
	JS:  "application/javascript",
}

// Tdewolff minifies with the tdewolff/minify tokenizing minifiers
type Tdewolff struct {
	m *minify.M
}

// NewTdewolff returns a Tdewolff engine with the CSS and JS minifiers registered
func NewTdewolff() *Tdewolff {
	m := minify.New()
	m.AddFunc(mediaTypes[CSS], css.Minify)
	m.AddFunc(mediaTypes[JS], js.Minify)
	return &Tdewolff{m: m}
}

func (t *Tdewolff) Name() string { return "tdewolff" }

func (t *Tdewolff) Minify(kind Kind, source string) (string, error) {
	mediaType, ok := mediaTypes[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}

	out, err := t.m.String(mediaType, source)
	if err != nil {
		return "", fmt.Errorf("tdewolff: %w", err)
	}
	return out, nil
}
