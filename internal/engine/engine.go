// Package engine selects the backend used to minify a stylesheet or script.
//
// The regex engine is the default. The esbuild and tdewolff engines wrap
// real tokenizers and exist so their output can be compared with it.
package engine

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Kind identifies the source language of a file
type Kind int

const (
	Unknown Kind = iota
	CSS
	JS
)

func (k Kind) String() string {
	switch k {
	case CSS:
		return "css"
	case JS:
		return "js"
	default:
		return "unknown"
	}
}

// Ext returns the file extension for the kind, including the dot
func (k Kind) Ext() string {
	if k == Unknown {
		return ""
	}
	return "." + k.String()
}

// KindFromPath returns the kind for a file name based on its extension
func KindFromPath(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css":
		return CSS
	case ".js":
		return JS
	default:
		return Unknown
	}
}

// Engine minifies source text of a given kind
type Engine interface {
	Name() string
	Minify(kind Kind, source string) (string, error)
}

// ErrUnknownEngine is returned by New for a name with no registered engine
var ErrUnknownEngine = errors.New("unknown engine")

// ErrUnsupportedKind is returned when an engine is asked to minify the Unknown kind
var ErrUnsupportedKind = errors.New("unsupported source kind")

// Default is the name of the engine used when none is configured
const Default = "regex"

var registry = map[string]func() Engine{
	"regex":    func() Engine { return Regex{} },
	"esbuild":  func() Engine { return Esbuild{} },
	"tdewolff": func() Engine { return NewTdewolff() },
}

// New returns the engine registered under name. An empty name selects Default.
func New(name string) (Engine, error) {
	if name == "" {
		name = Default
	}
	factory, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownEngine, name, strings.Join(Names(), ", "))
	}
	return factory(), nil
}

// Names lists the registered engine names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
