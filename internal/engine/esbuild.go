package engine

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// Esbuild minifies whitespace with esbuild's transform API. Identifiers and
// syntax are left alone so the result stays comparable to the regex engine.
type Esbuild struct{}

func (Esbuild) Name() string { return "esbuild" }

func (Esbuild) Minify(kind Kind, source string) (string, error) {
	var loader api.Loader
	switch kind {
	case CSS:
		loader = api.LoaderCSS
	case JS:
		loader = api.LoaderJS
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}

	result := api.Transform(source, api.TransformOptions{
		Loader:           loader,
		MinifyWhitespace: true,
		LegalComments:    api.LegalCommentsNone,
	})
	if len(result.Errors) > 0 {
		return "", fmt.Errorf("esbuild: %s", formatMessages(result.Errors))
	}

	return strings.TrimSpace(string(result.Code)), nil
}

func formatMessages(msgs []api.Message) string {
	parts := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		if msg.Location != nil {
			parts = append(parts, fmt.Sprintf("%d:%d: %s", msg.Location.Line, msg.Location.Column, msg.Text))
		} else {
			parts = append(parts, msg.Text)
		}
	}
	return strings.Join(parts, "; ")
}
