package annotate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"pcview/internal/pattern"
)

// Annotator turns one located block into its annotation set. The four
// sub-scans run in a fixed order and each starts over from the block
// beginning: they cover different pattern categories and each must see the
// whole block. The parameter scan seeds the declared-identifier set that
// the variable scan consults, so a parameter reassigned in the body is
// never re-tagged as a newly declared variable.
type Annotator struct {
	Owner string
}

// Annotate returns the annotations for text[b.Begin:b.End], in sub-scan
// order: keywords, function name, parameters, variable declarations.
func (a Annotator) Annotate(text string, b Block) []Annotation {
	body := text[b.Begin:b.End]
	declared := make(map[string]struct{})

	anns := a.keywordSpans(body, b.Begin, nil)

	name := pattern.FunctionName.Re.FindStringSubmatchIndex(body)
	if name != nil {
		g := pattern.FunctionName.Highlight
		anns = append(anns, Annotation{
			Span:  Span{Start: b.Begin + name[2*g], End: b.Begin + name[2*g+1], Cat: pattern.CatFunctionName},
			Owner: a.Owner,
		})
		// name[1] is the end of the full match, one past the opening paren.
		anns = a.parameterSpans(body, name[1], b.Begin, declared, anns)
	}

	return a.variableSpans(body, b.Begin, declared, anns)
}

func (a Annotator) keywordSpans(body string, base int, anns []Annotation) []Annotation {
	for _, m := range pattern.Keyword.Re.FindAllStringIndex(body, -1) {
		if !flankedByBoundary(body, m[0], m[1]) {
			continue
		}
		anns = append(anns, Annotation{
			Span:  Span{Start: base + m[0], End: base + m[1], Cat: pattern.CatKeyword},
			Owner: a.Owner,
		})
	}
	return anns
}

// flankedByBoundary reports whether [start, end) is bounded by whitespace
// or the text edges on both sides. This is what keeps a keyword token from
// matching inside a longer identifier such as "ifValue".
func flankedByBoundary(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if !unicode.IsSpace(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

type paramState int

const (
	paramBefore paramState = iota
	paramInside
	paramAtSeparator
)

// parameterSpans walks the characters after the header's opening paren,
// one at a time, emitting a parameter annotation at every comma or closing
// paren that terminates a non-empty accumulation. The emitted span is the
// raw accumulated text, surrounding whitespace included; the identifier
// recorded in declared is the trimmed form. The walk ends when the closing
// paren is consumed. If the block runs out first, the dangling accumulation
// is discarded.
func (a Annotator) parameterSpans(body string, from int, base int, declared map[string]struct{}, anns []Annotation) []Annotation {
	state := paramBefore
	start := from

	for i := from; i < len(body); i++ {
		c := body[i]
		switch {
		case c == ',' || c == ')':
			if state == paramInside {
				anns = append(anns, Annotation{
					Span:  Span{Start: base + start, End: base + i, Cat: pattern.CatParameter},
					Owner: a.Owner,
				})
				if id := strings.TrimSpace(body[start:i]); id != "" {
					declared[id] = struct{}{}
				}
			}
			if c == ')' {
				return anns
			}
			state = paramAtSeparator
		case state != paramInside:
			state = paramInside
			start = i
		}
	}
	return anns
}

// variableSpans emits a variable annotation for each "<ident> <-"
// declaration whose identifier has not been declared yet, then marks it
// declared so a second assignment to the same name stays unhighlighted.
func (a Annotator) variableSpans(body string, base int, declared map[string]struct{}, anns []Annotation) []Annotation {
	g := pattern.VariableDecl.Highlight
	for _, m := range pattern.VariableDecl.Re.FindAllStringSubmatchIndex(body, -1) {
		id := body[m[2*g]:m[2*g+1]]
		if _, ok := declared[id]; ok {
			continue
		}
		declared[id] = struct{}{}
		anns = append(anns, Annotation{
			Span:  Span{Start: base + m[2*g], End: base + m[2*g+1], Cat: pattern.CatVariable},
			Owner: a.Owner,
		})
	}
	return anns
}

// Bare annotates text that is pseudocode from top to bottom: no block
// location, no declared-identifier suppression, just the keyword and
// variable-declaration matchers over the whole input. Every assignment
// occurrence gets a span, including repeats.
func Bare(owner, text string) []Annotation {
	a := Annotator{Owner: owner}
	anns := a.keywordSpans(text, 0, nil)
	g := pattern.VariableDecl.Highlight
	for _, m := range pattern.VariableDecl.Re.FindAllStringSubmatchIndex(text, -1) {
		anns = append(anns, Annotation{
			Span:  Span{Start: m[2*g], End: m[2*g+1], Cat: pattern.CatVariable},
			Owner: owner,
		})
	}
	return anns
}
