package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"pcview/internal/annotate"
	"pcview/internal/pattern"
)

type docStyles struct {
	plain   lipgloss.Style
	gutter  lipgloss.Style
	byCat   map[pattern.Category]lipgloss.Style
	gutterW int
}

func newDocStyles(p ThemePalette, lineCount int) docStyles {
	gutterW := len(fmt.Sprintf("%d", lineCount))
	if gutterW < 3 {
		gutterW = 3
	}
	cats := []pattern.Category{
		pattern.CatKeyword,
		pattern.CatFunctionName,
		pattern.CatParameter,
		pattern.CatVariable,
	}
	byCat := make(map[pattern.Category]lipgloss.Style, len(cats))
	for _, cat := range cats {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colorForCategory(p, cat)))
		if cat == pattern.CatFunctionName {
			style = style.Bold(true)
		}
		byCat[cat] = style
	}
	return docStyles{
		plain:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)),
		gutter:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		byCat:   byCat,
		gutterW: gutterW,
	}
}

// renderDocLine renders one document line with its annotations applied,
// prefixed by a line-number gutter and clipped to width terminal cells.
// lineStart is the byte offset of the line within the document; anns must
// be sorted by span start.
func renderDocLine(line string, lineNo int, lineStart int, anns []annotate.Annotation, width int, st docStyles) string {
	gutter := st.gutter.Render(fmt.Sprintf("%*d ", st.gutterW, lineNo+1))
	budget := width - st.gutterW - 1
	if budget <= 0 {
		return truncateText(gutter, width)
	}

	display, indexMap := normalizeLineForDisplay(line)
	limit, clipped := clipToWidth(display, budget)

	catAt := func(srcOff int) (pattern.Category, bool) {
		for _, a := range anns {
			if a.Start > srcOff {
				break
			}
			if srcOff >= a.Start && srcOff < a.End {
				return a.Cat, true
			}
		}
		return 0, false
	}

	var b strings.Builder
	b.WriteString(gutter)

	for i := 0; i < limit; {
		cat, annotated := catAt(lineStart + indexMap[i])

		j := i + 1
		for j < limit {
			nextCat, nextAnnotated := catAt(lineStart + indexMap[j])
			if nextAnnotated != annotated || nextCat != cat {
				break
			}
			j++
		}

		style := st.plain
		if annotated {
			style = st.byCat[cat]
		}
		b.WriteString(style.Render(string(display[i:j])))
		i = j
	}

	if clipped {
		b.WriteString(st.plain.Render("..."))
	}
	return b.String()
}

// clipToWidth returns how many display runes fit in width cells, reserving
// room for an ellipsis when the line overflows.
func clipToWidth(display []rune, width int) (limit int, clipped bool) {
	total := 0
	for _, r := range display {
		total += runewidth.RuneWidth(r)
	}
	if total <= width {
		return len(display), false
	}

	budget := width - 3
	if budget < 0 {
		budget = 0
	}
	used := 0
	for i, r := range display {
		w := runewidth.RuneWidth(r)
		if used+w > budget {
			return i, true
		}
		used += w
	}
	return len(display), true
}

// annsOverlappingLine narrows a sorted annotation slice to those touching
// [start, end).
func annsOverlappingLine(anns []annotate.Annotation, start, end int) []annotate.Annotation {
	var out []annotate.Annotation
	for _, a := range anns {
		if a.End <= start {
			continue
		}
		if a.Start >= end {
			break
		}
		out = append(out, a)
	}
	return out
}
