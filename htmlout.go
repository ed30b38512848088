package main

import (
	"fmt"
	"html"
	"strings"

	"pcview/internal/annotate"
)

// renderHTMLFragment serializes the document with its annotations as a
// <pre> fragment. Each annotated span becomes a <span> whose class is the
// category name, which is the same category-to-style mapping contract the
// terminal renderer uses.
func renderHTMLFragment(text string, anns []annotate.Annotation) string {
	var b strings.Builder
	b.WriteString(`<pre class="pcview">`)

	cursor := 0
	for _, a := range anns {
		if a.Start < cursor {
			continue
		}
		end := a.End
		if end > len(text) {
			end = len(text)
		}
		if a.Start > len(text) || end <= a.Start {
			continue
		}
		b.WriteString(html.EscapeString(text[cursor:a.Start]))
		fmt.Fprintf(&b, `<span class="%s">%s</span>`, a.Cat, html.EscapeString(text[a.Start:end]))
		cursor = end
	}
	if cursor < len(text) {
		b.WriteString(html.EscapeString(text[cursor:]))
	}

	b.WriteString("</pre>\n")
	return b.String()
}

// renderHTMLPage wraps the fragment in a standalone page styled from the
// active theme palette.
func renderHTMLPage(title string, text string, anns []annotate.Annotation, p ThemePalette) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("<style>\n")
	fmt.Fprintf(&b, "pre.pcview { color: %s; }\n", p.Text)
	fmt.Fprintf(&b, "pre.pcview span.keyword { color: %s; }\n", p.Keyword)
	fmt.Fprintf(&b, "pre.pcview span.function-name { color: %s; font-weight: bold; }\n", p.Function)
	fmt.Fprintf(&b, "pre.pcview span.parameter, pre.pcview span.variable { color: %s; }\n", p.Variable)
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(renderHTMLFragment(text, anns))
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
