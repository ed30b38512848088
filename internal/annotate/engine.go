package annotate

import "math"

// DefaultOwner tags annotations installed by this engine unless the host
// configures its own tag.
const DefaultOwner = "pcview"

// Engine wires a locator, an annotator and a store into the entry point
// the host's re-highlighting trigger calls.
type Engine struct {
	owner   string
	locator Locator
	store   *Store
}

type Config struct {
	Owner   string
	Locator Locator
	Store   *Store
}

func New(cfg Config) *Engine {
	owner := cfg.Owner
	if owner == "" {
		owner = DefaultOwner
	}
	locator := cfg.Locator
	if locator == nil {
		locator = ScanLocator{}
	}
	store := cfg.Store
	if store == nil {
		store = NewStore()
	}
	return &Engine{owner: owner, locator: locator, store: store}
}

func (e *Engine) Store() *Store {
	return e.store
}

func (e *Engine) Owner() string {
	return e.owner
}

// Rescan recomputes annotations after the host reports the dirty range r.
// The walk always starts at offset 0 and runs to the end of the buffer: the
// requested range marks what must be fresh afterwards, and scanning from
// the top is the simplest way to guarantee that, at the cost of redoing
// clean blocks. Hosts with very large documents would want per-block
// revalidation here instead; the observable output would not change.
//
// Rescan runs to completion as one synchronous unit. A host abandoning a
// scan mid-way must restart it from the top, never resume.
//
// The returned count is the number of blocks annotated.
func (e *Engine) Rescan(src Text, r Range) int {
	text := src.Substring(0, src.Len())

	var fresh []Annotation
	cursor := 0
	blocks := 0
	for cursor < len(text) {
		b, ok := e.locator.Locate(text, cursor)
		if !ok {
			break
		}
		a := Annotator{Owner: e.owner}
		fresh = append(fresh, a.Annotate(text, b)...)
		cursor = b.End
		blocks++
	}
	// One whole-store reconcile per pass. Replacing every annotation we own
	// in a single step means no span from a previous scan can survive, not
	// even one straddling a block boundary an edit has shifted.
	e.store.Reconcile(Range{Start: 0, End: math.MaxInt}, e.owner, fresh)
	return blocks
}

// RescanAll is Rescan over the whole buffer, for hosts that cannot compute
// a tighter dirty range.
func (e *Engine) RescanAll(src Text) int {
	return e.Rescan(src, Range{Start: 0, End: src.Len()})
}
