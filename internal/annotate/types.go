// Package annotate implements the pseudocode annotation engine: locating
// function comment blocks, running the ordered sub-scans over each block,
// and reconciling the resulting spans into an annotation store.
package annotate

import "pcview/internal/pattern"

// Span is a half-open byte interval over the document tagged with the
// highlight category it earned.
type Span struct {
	Start int
	End   int
	Cat   pattern.Category
}

// Range is a plain byte interval, used for dirty regions and reconcile
// boundaries.
type Range struct {
	Start int
	End   int
}

// Annotation is a span plus the tag of whoever installed it. The owner tag
// lets a reconcile pass clear this engine's spans without touching
// annotations other tooling may have parked on the same document.
type Annotation struct {
	Span
	Owner string
}

// Block is one located pseudocode function comment. Blocks live only for
// the duration of a single annotation pass.
type Block struct {
	Begin int
	End   int
}

// Text is the slice of the host buffer the engine needs: total length and
// random-access substrings.
type Text interface {
	Len() int
	Substring(start, end int) string
}

// String adapts a plain string to the Text interface.
type String string

func (s String) Len() int { return len(s) }

func (s String) Substring(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(s) {
		end = len(s)
	}
	if end <= start {
		return ""
	}
	return string(s[start:end])
}
