package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func truncateText(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", "    ")

	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

func padRightANSI(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func clamp(v int, lo int, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normalizeLineForDisplay expands a raw document line into display runes
// (tabs become four spaces, carriage returns drop out) plus a map from each
// display rune back to its source byte offset within the line.
func normalizeLineForDisplay(line string) ([]rune, []int) {
	out := make([]rune, 0, len(line))
	indexMap := make([]int, 0, len(line))

	for i, r := range line {
		switch r {
		case '\r':
			continue
		case '\t':
			for j := 0; j < 4; j++ {
				out = append(out, ' ')
				indexMap = append(indexMap, i)
			}
		default:
			out = append(out, r)
			indexMap = append(indexMap, i)
		}
	}

	return out, indexMap
}
