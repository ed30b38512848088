// Package pattern holds the fixed lexical rules for pseudocode annotation:
// the keyword token list and the compiled matchers for function headers and
// variable declarations. Everything here is process-wide constant data.
package pattern

import (
	"regexp"
	"strings"
)

type Category int

const (
	CatKeyword Category = iota
	CatFunctionName
	CatParameter
	CatVariable
)

func (c Category) String() string {
	switch c {
	case CatKeyword:
		return "keyword"
	case CatFunctionName:
		return "function-name"
	case CatParameter:
		return "parameter"
	case CatVariable:
		return "variable"
	}
	return "unknown"
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(s string) (Category, bool) {
	switch s {
	case "keyword":
		return CatKeyword, true
	case "function-name":
		return CatFunctionName, true
	case "parameter":
		return CatParameter, true
	case "variable":
		return CatVariable, true
	}
	return 0, false
}

// Keywords is the fixed token list. A token only counts as a keyword when
// flanked by whitespace or a text boundary; the flank check lives with the
// keyword scan, not in the regexp, because RE2 has no lookbehind and a
// whitespace group in the pattern would swallow the separator between two
// adjacent keywords. "<--" precedes "<-" so the alternation never stops
// short on the longer operator.
var Keywords = []string{
	"Function", "Input", "Output", "<--", "<-", "if", "then", "else",
	"NOT", "AND", "while", "repeat", "return",
}

// Pattern is a compiled matcher plus the submatch that carries the span to
// highlight and the category that span gets tagged with.
type Pattern struct {
	Re        *regexp.Regexp
	Highlight int
	Cat       Category
}

var (
	// Keyword matches candidate tokens; callers must still verify flanks.
	Keyword = Pattern{
		Re:        regexp.MustCompile(keywordAlternation()),
		Highlight: 0,
		Cat:       CatKeyword,
	}

	// FunctionName matches a "Function <name>(" header and highlights the
	// name. The full match ends at the opening paren, which is where the
	// parameter scan picks up.
	FunctionName = Pattern{
		Re:        regexp.MustCompile(`Function[ \t]+([A-Za-z_][A-Za-z0-9_]*)\(`),
		Highlight: 1,
		Cat:       CatFunctionName,
	}

	// VariableDecl matches "<identifier> <-" or "<identifier> <--" and the
	// rest of the line. The identifier must start right after a
	// non-identifier character (or the start of the block) so a match never
	// begins inside a longer identifier.
	VariableDecl = Pattern{
		Re:        regexp.MustCompile(`(?:^|[^A-Za-z0-9_])([A-Za-z_][A-Za-z0-9_]*)[ \t]+<--?[^\n]*`),
		Highlight: 1,
		Cat:       CatVariable,
	}
)

func keywordAlternation() string {
	quoted := make([]string, len(Keywords))
	for i, k := range Keywords {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return strings.Join(quoted, "|")
}

// Header is the weakest shape a comment must contain to count as a
// pseudocode function block. It deliberately does not require the opening
// paren: a header missing its paren still locates, the function-name and
// parameter sub-scans just come up empty for it.
var Header = regexp.MustCompile(`Function[ \t]+[A-Za-z_][A-Za-z0-9_]*`)
