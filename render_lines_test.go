package main

import (
	"testing"

	"pcview/internal/annotate"
	"pcview/internal/pattern"
)

func TestNormalizeLineForDisplay(t *testing.T) {
	display, indexMap := normalizeLineForDisplay("a\tb\r")
	if got := string(display); got != "a    b" {
		t.Fatalf("display = %q, want %q", got, "a    b")
	}
	// The four expanded cells all map back to the tab's byte offset.
	want := []int{0, 1, 1, 1, 1, 2}
	if len(indexMap) != len(want) {
		t.Fatalf("indexMap = %v, want %v", indexMap, want)
	}
	for i := range want {
		if indexMap[i] != want[i] {
			t.Fatalf("indexMap = %v, want %v", indexMap, want)
		}
	}
}

func TestAnnsOverlappingLine(t *testing.T) {
	anns := []annotate.Annotation{
		{Span: annotate.Span{Start: 0, End: 3, Cat: pattern.CatKeyword}},
		{Span: annotate.Span{Start: 5, End: 8, Cat: pattern.CatVariable}},
		{Span: annotate.Span{Start: 20, End: 24, Cat: pattern.CatKeyword}},
	}
	got := annsOverlappingLine(anns, 4, 10)
	if len(got) != 1 || got[0].Start != 5 {
		t.Fatalf("overlapping = %v, want the span at 5", got)
	}
}

func TestRenderDocLineShowsAllCategories(t *testing.T) {
	line := " * Function doX(a, b)"
	anns := []annotate.Annotation{
		{Span: annotate.Span{Start: 3, End: 11, Cat: pattern.CatKeyword}},
		{Span: annotate.Span{Start: 12, End: 15, Cat: pattern.CatFunctionName}},
		{Span: annotate.Span{Start: 16, End: 17, Cat: pattern.CatParameter}},
		{Span: annotate.Span{Start: 18, End: 20, Cat: pattern.CatParameter}},
	}

	st := newDocStyles(mustDefaultTheme(), 100)
	out := renderDocLine(line, 0, 0, anns, 80, st)
	if out == "" {
		t.Fatalf("empty render")
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("hello world", 8); got != "hello..." {
		t.Fatalf("truncateText = %q, want %q", got, "hello...")
	}
	if got := truncateText("short", 8); got != "short" {
		t.Fatalf("truncateText = %q, want %q", got, "short")
	}
}
