package document

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewIndexesLines(t *testing.T) {
	d := New("one\ntwo\nthree")
	if d.LineCount() != 3 {
		t.Fatalf("LineCount = %d, want 3", d.LineCount())
	}
	if got := d.LineAt(1); got != "two" {
		t.Fatalf("LineAt(1) = %q, want %q", got, "two")
	}
	start, end := d.LineSpan(1)
	if start != 4 || end != 7 {
		t.Fatalf("LineSpan(1) = [%d, %d), want [4, 7)", start, end)
	}
}

func TestLineOf(t *testing.T) {
	d := New("one\ntwo\nthree")
	tests := []struct {
		off  int
		want int
	}{
		{0, 0},
		{3, 0},
		{4, 1},
		{6, 1},
		{8, 2},
		{100, 2},
	}
	for _, tt := range tests {
		if got := d.LineOf(tt.off); got != tt.want {
			t.Fatalf("LineOf(%d) = %d, want %d", tt.off, got, tt.want)
		}
	}
}

func TestSubstringClamps(t *testing.T) {
	d := New("hello")
	if got := d.Substring(-3, 99); got != "hello" {
		t.Fatalf("Substring(-3, 99) = %q", got)
	}
	if got := d.Substring(4, 2); got != "" {
		t.Fatalf("Substring(4, 2) = %q, want empty", got)
	}
}

func TestReplaceReturnsDirtyRange(t *testing.T) {
	d := New("aaa bbb ccc")
	start, end := d.Replace(4, 7, "XXXXX")
	if start != 4 || end != 9 {
		t.Fatalf("dirty range = [%d, %d), want [4, 9)", start, end)
	}
	if got := d.Text(); got != "aaa XXXXX ccc" {
		t.Fatalf("Text = %q", got)
	}
}

func TestReplaceReindexesLines(t *testing.T) {
	d := New("one two")
	d.Replace(3, 4, "\n")
	if d.LineCount() != 2 {
		t.Fatalf("LineCount = %d, want 2", d.LineCount())
	}
	if got := d.LineAt(1); got != "two" {
		t.Fatalf("LineAt(1) = %q, want %q", got, "two")
	}
}

func TestLoadNormalizesCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("a\r\nb\r\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := d.Text(); got != "a\nb\n" {
		t.Fatalf("Text = %q, want %q", got, "a\nb\n")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
