// Package document is the host-side text buffer the annotation engine
// scans: the full text, a line index for rendering, and a replace operation
// that reports the dirty range an edit produced.
package document

import (
	"os"
	"sort"
	"strings"
)

type Document struct {
	text  string
	lines []int // byte offset of each line start
}

// Load reads a file and normalizes line endings to "\n".
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(strings.ReplaceAll(string(data), "\r\n", "\n")), nil
}

func New(text string) *Document {
	d := &Document{text: text}
	d.reindex()
	return d
}

func (d *Document) reindex() {
	d.lines = d.lines[:0]
	d.lines = append(d.lines, 0)
	for i := 0; i < len(d.text); i++ {
		if d.text[i] == '\n' {
			d.lines = append(d.lines, i+1)
		}
	}
}

func (d *Document) Text() string {
	return d.text
}

func (d *Document) Len() int {
	return len(d.text)
}

// Substring returns d.text[start:end], clamped to the document bounds.
func (d *Document) Substring(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(d.text) {
		end = len(d.text)
	}
	if end <= start {
		return ""
	}
	return d.text[start:end]
}

func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineSpan returns the byte range [start, end) of line n, excluding the
// trailing newline. Out-of-range lines yield an empty span at the nearest
// document edge.
func (d *Document) LineSpan(n int) (int, int) {
	if n < 0 {
		return 0, 0
	}
	if n >= len(d.lines) {
		return len(d.text), len(d.text)
	}
	start := d.lines[n]
	end := len(d.text)
	if n+1 < len(d.lines) {
		end = d.lines[n+1] - 1
	}
	return start, end
}

func (d *Document) LineAt(n int) string {
	start, end := d.LineSpan(n)
	return d.text[start:end]
}

// LineOf returns the line index containing byte offset off.
func (d *Document) LineOf(off int) int {
	if off <= 0 {
		return 0
	}
	if off >= len(d.text) {
		return len(d.lines) - 1
	}
	return sort.Search(len(d.lines), func(i int) bool { return d.lines[i] > off }) - 1
}

// Replace substitutes s for d.text[start:end] and returns the dirty range
// in the new text, which the host hands to the engine's rescan trigger.
func (d *Document) Replace(start, end int, s string) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > len(d.text) {
		end = len(d.text)
	}
	if end < start {
		end = start
	}
	d.text = d.text[:start] + s + d.text[end:]
	d.reindex()
	return start, start + len(s)
}
