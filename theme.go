package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"pcview/internal/pattern"
)

type ThemePalette struct {
	Name     string
	Text     string
	Muted    string
	Header   string
	Accent   string
	Keyword  string
	Function string
	Variable string
	Comment  string
	Error    string
}

var appTheme = mustDefaultTheme()

func SetTheme(name string) error {
	palette, err := LoadThemePalette(name)
	if err != nil {
		return err
	}
	appTheme = palette
	return nil
}

func LoadThemePalette(name string) (ThemePalette, error) {
	requested := strings.TrimSpace(name)
	if requested == "" {
		requested = "nord"
	}

	lookup := normalizeThemeName(requested)
	names := styles.Names()
	available := make(map[string]struct{}, len(names))
	for _, n := range names {
		available[n] = struct{}{}
	}
	unknownThemeErr := func() error {
		sort.Strings(names)
		return fmt.Errorf("unknown theme %q. try one of: %s", requested, strings.Join(topThemeHints(names), ", "))
	}
	if _, ok := available[lookup]; !ok {
		return ThemePalette{}, unknownThemeErr()
	}

	style := styles.Get(lookup)
	if style == nil {
		return ThemePalette{}, unknownThemeErr()
	}

	baseFG := pickForeground(style, "#D8DEE9", chroma.Text, chroma.Background)
	comment := pickForeground(style, adjustTone(baseFG, -60), chroma.Comment)

	palette := ThemePalette{
		Name:     lookup,
		Text:     baseFG,
		Muted:    pickForeground(style, adjustTone(baseFG, -48), chroma.LineNumbers, chroma.Comment),
		Header:   pickForeground(style, adjustTone(baseFG, -20), chroma.NameClass, chroma.Keyword),
		Accent:   pickForeground(style, baseFG, chroma.NameFunction, chroma.Keyword),
		Keyword:  pickForeground(style, baseFG, chroma.Keyword),
		Function: pickForeground(style, baseFG, chroma.NameFunction, chroma.Name),
		Variable: pickForeground(style, baseFG, chroma.NameVariable, chroma.Name),
		Comment:  comment,
		Error:    pickForeground(style, "#BF616A", chroma.Error),
	}

	return palette, nil
}

// colorForCategory maps annotation categories to palette colors: keywords
// to the keyword color, the function name to the function color, and both
// parameters and variables to the variable color.
func colorForCategory(p ThemePalette, cat pattern.Category) string {
	switch cat {
	case pattern.CatKeyword:
		return p.Keyword
	case pattern.CatFunctionName:
		return p.Function
	case pattern.CatParameter, pattern.CatVariable:
		return p.Variable
	}
	return p.Text
}

func normalizeThemeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "solarized":
		return "solarized-dark"
	case "one-dark":
		return "onedark"
	default:
		return n
	}
}

func pickForeground(style *chroma.Style, fallback string, types ...chroma.TokenType) string {
	for _, tt := range types {
		entry := style.Get(tt)
		if entry.Colour.IsSet() {
			return entry.Colour.String()
		}
	}
	return fallback
}

func topThemeHints(all []string) []string {
	wanted := []string{"nord", "dracula", "monokai", "github", "github-dark", "solarized-dark", "solarized-light", "gruvbox", "onedark"}
	set := map[string]bool{}
	for _, n := range all {
		set[n] = true
	}
	out := make([]string, 0, len(wanted))
	for _, name := range wanted {
		if set[name] {
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		limit := min(8, len(all))
		return all[:limit]
	}
	return out
}

func adjustTone(hex string, delta int) string {
	r, g, b, ok := parseHexRGB(hex)
	if !ok {
		return hex
	}
	r = clamp8(r + delta)
	g = clamp8(g + delta)
	b = clamp8(b + delta)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func parseHexRGB(hex string) (int, int, int, bool) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	r := int((v >> 16) & 0xFF)
	g := int((v >> 8) & 0xFF)
	b := int(v & 0xFF)
	return r, g, b, true
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func mustDefaultTheme() ThemePalette {
	p, err := LoadThemePalette("nord")
	if err == nil {
		return p
	}
	return ThemePalette{
		Name:     "fallback",
		Text:     "#D8DEE9",
		Muted:    "#4C566A",
		Header:   "#8FBCBB",
		Accent:   "#88C0D0",
		Keyword:  "#81A1C1",
		Function: "#88C0D0",
		Variable: "#B48EAD",
		Comment:  "#4C566A",
		Error:    "#BF616A",
	}
}
