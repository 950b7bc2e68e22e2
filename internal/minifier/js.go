package minifier

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Keywords that must stay separated from the token that follows them.
var jsKeywords = []string{
	"function", "return", "var", "let", "const",
	"if", "else", "for", "while", "do",
	"switch", "case", "break", "continue",
	"new", "typeof", "instanceof",
}

var (
	jsRules = []rule{
		blockComment,
		collapseWS,
		newRule(ws+`*([{};:,=<>+\-*/%&|!?])`+ws+`*`, "${1}"),
	}
	jsKeywordRules = keywordRules(jsKeywords)
)

// keywordRule inserts a space between a reserved word and a directly
// following character that is neither whitespace nor part of an identifier.
type keywordRule struct {
	keyword string
	re      *regexp.Regexp
}

func keywordRules(keywords []string) []keywordRule {
	rules := make([]keywordRule, 0, len(keywords))
	for _, kw := range keywords {
		rules = append(rules, keywordRule{
			keyword: kw,
			re:      regexp.MustCompile(regexp.QuoteMeta(kw) + `[^` + wsChars + wordChars + `]`),
		})
	}
	return rules
}

// apply skips matches preceded by an identifier character. RE2 has no
// lookbehind, so the previous rune is checked here.
func (k keywordRule) apply(text string) string {
	matches := k.re.FindAllStringIndex(text, -1)
	if matches == nil {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(matches))

	last := 0
	for _, m := range matches {
		if prev, _ := utf8.DecodeLastRuneInString(text[:m[0]]); m[0] > 0 && isWordRune(prev) {
			continue
		}
		split := m[0] + len(k.keyword)
		b.WriteString(text[last:split])
		b.WriteByte(' ')
		last = split
	}
	b.WriteString(text[last:])

	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r)
}

// MinifyJS removes comments and insignificant whitespace from JavaScript
// source, then puts back the space after reserved words that operator
// tightening may have removed.
func MinifyJS(source string) string {
	result := stripLineComments(source)
	result = apply(result, jsRules)
	for _, kw := range jsKeywordRules {
		result = kw.apply(result)
	}
	return strings.TrimSpace(result)
}

// stripLineComments drops every "//" through end of line unless the "//" is
// directly preceded by ':', which keeps "http://" in string literals intact.
// The newline itself is kept. A comment that follows a URL on the same line
// is still removed, and so is anything after a "//" inside a string.
func stripLineComments(source string) string {
	var b strings.Builder
	b.Grow(len(source))

	for i := 0; i < len(source); i++ {
		if source[i] == '/' && i+1 < len(source) && source[i+1] == '/' && (i == 0 || source[i-1] != ':') {
			end := strings.IndexByte(source[i:], '\n')
			if end == -1 {
				break
			}
			i += end - 1
			continue
		}
		b.WriteByte(source[i])
	}

	return b.String()
}
