package annotate

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	clang "github.com/smacker/go-tree-sitter/c"

	"pcview/internal/pattern"
)

// ParseLocator finds pseudocode function comments by parsing the document
// as C and walking the comment nodes of the tree. Unlike ScanLocator it is
// not fooled by "/*" sequences inside string literals. Block boundaries and
// header confirmation are identical to the scan locator, so the two are
// interchangeable on well-formed documents.
type ParseLocator struct {
	parser *sitter.Parser

	// one parse per document text, reused across Locate calls
	lastText   string
	lastBlocks []Block
	parsed     bool
}

func NewParseLocator() *ParseLocator {
	p := sitter.NewParser()
	p.SetLanguage(clang.GetLanguage())
	return &ParseLocator{parser: p}
}

func (l *ParseLocator) Locate(text string, from int) (Block, bool) {
	if !l.parsed || l.lastText != text {
		l.lastBlocks = l.collect(text)
		l.lastText = text
		l.parsed = true
	}
	for _, b := range l.lastBlocks {
		if b.Begin >= from {
			return b, true
		}
	}
	return Block{}, false
}

func (l *ParseLocator) collect(text string) []Block {
	tree, err := l.parser.ParseCtx(context.Background(), nil, []byte(text))
	if err != nil || tree == nil {
		return nil
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil
	}

	var blocks []Block
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		if n.Type() == "comment" {
			begin := int(n.StartByte())
			end := int(n.EndByte())
			if begin < 0 || end > len(text) || end <= begin {
				return
			}
			body := text[begin:end]
			if strings.HasPrefix(body, "/*") && strings.HasSuffix(body, "*/") && pattern.Header.MatchString(body) {
				blocks = append(blocks, Block{Begin: begin, End: end})
			}
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)
	return blocks
}
