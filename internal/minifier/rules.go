// Package minifier shrinks CSS and JavaScript source text with ordered
// regular-expression substitutions. It does not tokenize its input, so
// text inside string, regex and URL literals is rewritten like any other
// text. Both entry points are pure and safe for concurrent use.
package minifier

import "regexp"

// ws matches one character for which unicode.IsSpace reports true, so the
// collapse passes and the final strings.TrimSpace agree on what whitespace is.
const (
	wsChars = `\s\v\x{85}\p{Zs}\x{2028}\x{2029}`
	ws      = `[` + wsChars + `]`

	// Identifier characters, including non-ASCII letters and marks
	wordChars = `\p{L}\p{M}\p{N}_`
)

// rule is a single find/replace pass. Replacements may use $1-style references.
type rule struct {
	re   *regexp.Regexp
	repl string
}

func newRule(pattern, repl string) rule {
	return rule{re: regexp.MustCompile(pattern), repl: repl}
}

// apply runs rules in order, each over the previous rule's output.
func apply(text string, rules []rule) string {
	for _, r := range rules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return text
}

var (
	blockComment = newRule(`/\*[\s\S]*?\*/`, "")
	collapseWS   = newRule(ws+`+`, " ")
)
