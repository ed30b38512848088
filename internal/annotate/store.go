package annotate

import "sort"

// Store holds the live annotations for one document. It is owned by
// whichever session drives the engine; nothing here is process-global.
// Mutation happens only through Reconcile and Add, and only from within a
// single rescan at a time. The host serializes rescans, so the store
// carries no lock.
type Store struct {
	anns []Annotation
}

func NewStore() *Store {
	return &Store{}
}

// Annotations returns a copy of the stored annotations, sorted by
// (Start, End, Cat).
func (s *Store) Annotations() []Annotation {
	out := make([]Annotation, len(s.anns))
	copy(out, s.anns)
	return out
}

func (s *Store) Len() int {
	return len(s.anns)
}

// Add installs one annotation outside a reconcile pass. Hosts use it to
// park foreign-owned annotations on the same document.
func (s *Store) Add(a Annotation) {
	s.anns = append(s.anns, a)
	sortAnnotations(s.anns)
}

// Reconcile removes every annotation owned by owner whose span lies within
// r, then installs fresh. The swap happens in one step: an observer sees
// either the old set or the new set for the range, never a mix. Calling it
// again with the same range and a recomputed but equal fresh set leaves the
// store unchanged.
func (s *Store) Reconcile(r Range, owner string, fresh []Annotation) {
	out := make([]Annotation, 0, len(s.anns)+len(fresh))
	for _, a := range s.anns {
		if a.Owner == owner && a.Start >= r.Start && a.End <= r.End {
			continue
		}
		out = append(out, a)
	}
	out = append(out, fresh...)
	sortAnnotations(out)
	s.anns = dedupeAnnotations(out)
}

// InRange returns the stored annotations whose span lies within r.
func (s *Store) InRange(r Range) []Annotation {
	var out []Annotation
	for _, a := range s.anns {
		if a.Start >= r.Start && a.End <= r.End {
			out = append(out, a)
		}
	}
	return out
}

func sortAnnotations(anns []Annotation) {
	sort.Slice(anns, func(i, j int) bool {
		if anns[i].Start != anns[j].Start {
			return anns[i].Start < anns[j].Start
		}
		if anns[i].End != anns[j].End {
			return anns[i].End < anns[j].End
		}
		return anns[i].Cat < anns[j].Cat
	})
}

// dedupeAnnotations drops exact (span, category, owner) duplicates from a
// sorted slice, keeping the first of each run.
func dedupeAnnotations(anns []Annotation) []Annotation {
	out := anns[:0]
	for _, a := range anns {
		if n := len(out); n > 0 && a == out[n-1] {
			continue
		}
		out = append(out, a)
	}
	return out
}
