package annotate

import (
	"testing"

	"kr.dev/diff"

	"pcview/internal/pattern"
)

func TestStoreReconcileReplacesOwnedSpans(t *testing.T) {
	s := NewStore()
	old := []Annotation{
		{Span: Span{Start: 0, End: 4, Cat: pattern.CatKeyword}, Owner: "eng"},
		{Span: Span{Start: 6, End: 9, Cat: pattern.CatVariable}, Owner: "eng"},
	}
	s.Reconcile(Range{Start: 0, End: 20}, "eng", old)

	fresh := []Annotation{
		{Span: Span{Start: 2, End: 5, Cat: pattern.CatKeyword}, Owner: "eng"},
	}
	s.Reconcile(Range{Start: 0, End: 20}, "eng", fresh)

	diff.Test(t, t.Errorf, s.Annotations(), fresh)
}

func TestStoreReconcileIsIdempotent(t *testing.T) {
	s := NewStore()
	fresh := []Annotation{
		{Span: Span{Start: 3, End: 7, Cat: pattern.CatFunctionName}, Owner: "eng"},
		{Span: Span{Start: 8, End: 9, Cat: pattern.CatParameter}, Owner: "eng"},
	}

	s.Reconcile(Range{Start: 0, End: 50}, "eng", fresh)
	once := s.Annotations()
	s.Reconcile(Range{Start: 0, End: 50}, "eng", fresh)

	diff.Test(t, t.Errorf, s.Annotations(), once)
}

func TestStoreReconcileKeepsForeignOwners(t *testing.T) {
	s := NewStore()
	foreign := Annotation{Span: Span{Start: 1, End: 2, Cat: pattern.CatKeyword}, Owner: "spellcheck"}
	s.Add(foreign)

	s.Reconcile(Range{Start: 0, End: 100}, "eng", []Annotation{
		{Span: Span{Start: 5, End: 8, Cat: pattern.CatKeyword}, Owner: "eng"},
	})
	s.Reconcile(Range{Start: 0, End: 100}, "eng", nil)

	diff.Test(t, t.Errorf, s.Annotations(), []Annotation{foreign})
}

func TestStoreReconcileLeavesSpansOutsideRange(t *testing.T) {
	s := NewStore()
	outside := Annotation{Span: Span{Start: 40, End: 45, Cat: pattern.CatVariable}, Owner: "eng"}
	s.Reconcile(Range{Start: 0, End: 100}, "eng", []Annotation{outside})

	s.Reconcile(Range{Start: 0, End: 10}, "eng", []Annotation{
		{Span: Span{Start: 2, End: 4, Cat: pattern.CatKeyword}, Owner: "eng"},
	})

	got := s.Annotations()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[1] != outside {
		t.Fatalf("annotation outside range was disturbed: %v", got[1])
	}
}

func TestStoreInRange(t *testing.T) {
	s := NewStore()
	s.Add(Annotation{Span: Span{Start: 0, End: 3, Cat: pattern.CatKeyword}, Owner: "eng"})
	s.Add(Annotation{Span: Span{Start: 10, End: 13, Cat: pattern.CatKeyword}, Owner: "eng"})

	got := s.InRange(Range{Start: 8, End: 20})
	if len(got) != 1 || got[0].Start != 10 {
		t.Fatalf("InRange = %v, want the single span at 10", got)
	}
}
