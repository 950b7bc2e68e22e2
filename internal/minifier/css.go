package minifier

import "strings"

var cssRules = []rule{
	blockComment,
	collapseWS,
	// Combinator and declaration punctuation
	newRule(ws+`*([{};:,>+~])`+ws+`*`, "${1}"),
	// Inside parentheses only; "and (" in media queries must keep its space
	newRule(`\(`+ws+`*`, "("),
	newRule(ws+`*\)`, ")"),
	// Redundant semicolons before a closing brace
	newRule(`;+}`, "}"),
}

// MinifyCSS removes comments and insignificant whitespace from CSS source.
//
// Punctuation inside quoted strings and url() values is tightened like any
// other punctuation.
func MinifyCSS(source string) string {
	return strings.TrimSpace(apply(source, cssRules))
}
