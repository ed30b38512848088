package main

import (
	"testing"

	"pcview/internal/pattern"
)

func TestLoadThemePaletteKnown(t *testing.T) {
	p, err := LoadThemePalette("nord")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "nord" || p.Keyword == "" {
		t.Fatalf("palette = %+v", p)
	}
}

func TestLoadThemePaletteUnknown(t *testing.T) {
	if _, err := LoadThemePalette("not-a-theme"); err == nil {
		t.Fatalf("expected an error for unknown theme")
	}
}

func TestColorForCategoryMapping(t *testing.T) {
	p := mustDefaultTheme()
	if colorForCategory(p, pattern.CatKeyword) != p.Keyword {
		t.Fatalf("keyword color mismatch")
	}
	if colorForCategory(p, pattern.CatFunctionName) != p.Function {
		t.Fatalf("function color mismatch")
	}
	if colorForCategory(p, pattern.CatParameter) != p.Variable {
		t.Fatalf("parameter must use the variable color")
	}
	if colorForCategory(p, pattern.CatVariable) != p.Variable {
		t.Fatalf("variable color mismatch")
	}
}
