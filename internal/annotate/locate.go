package annotate

import (
	"strings"

	"pcview/internal/pattern"
)

// Locator finds the next pseudocode function comment at or after a given
// offset. Implementations return ok=false when no further block exists;
// malformed or unterminated comments are skipped, never reported.
type Locator interface {
	Locate(text string, from int) (Block, bool)
}

// ScanLocator walks "/*" ... "*/" pairs directly in the text and keeps the
// first pair whose interior carries a Function header. Interior decoration
// ("*" gutters, newlines) needs no special handling since the bounds come
// from the delimiters alone.
type ScanLocator struct{}

func (ScanLocator) Locate(text string, from int) (Block, bool) {
	if from < 0 {
		from = 0
	}
	for from < len(text) {
		rel := strings.Index(text[from:], "/*")
		if rel < 0 {
			return Block{}, false
		}
		open := from + rel

		term := strings.Index(text[open+2:], "*/")
		if term < 0 {
			// Unterminated comment: nothing after it can close either.
			return Block{}, false
		}
		end := open + 2 + term + 2

		if pattern.Header.MatchString(text[open:end]) {
			return Block{Begin: open, End: end}, true
		}
		// Plain comment without a Function header. Resume right after the
		// opener so a nested-looking "/*" cannot be skipped.
		from = open + 2
	}
	return Block{}, false
}
