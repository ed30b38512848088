package main

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"pcview/internal/annotate"
	"pcview/internal/document"
)

type config struct {
	Path    string
	Theme   string
	Locator string
	Bare    bool
	Spans   bool
	HTML    bool
	Out     string
}

type model struct {
	cfg config

	width  int
	height int

	doc    *document.Document
	eng    *annotate.Engine
	anns   []annotate.Annotation
	blocks int

	offset int
	status string
	errMsg string
}

func newModel(cfg config, doc *document.Document, eng *annotate.Engine) model {
	return model{cfg: cfg, doc: doc, eng: eng}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.offset--
		case "down", "j":
			m.offset++
		case "pgup":
			m.offset -= m.docRows()
		case "pgdown", " ":
			m.offset += m.docRows()
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.offset = m.maxOffset()
		case "r":
			m.reload()
		}
		m.clampOffset()
		m.refresh()
		return m, nil
	}
	return m, nil
}

func (m *model) docRows() int {
	return max(1, m.height-2)
}

func (m *model) maxOffset() int {
	return max(0, m.doc.LineCount()-m.docRows())
}

func (m *model) clampOffset() {
	m.offset = clamp(m.offset, 0, m.maxOffset())
}

// refresh is the host-side re-highlighting trigger: every viewport change
// lands here and drives one synchronous rescan. Update calls are serialized
// by the tea runtime, so rescans never interleave.
func (m *model) refresh() {
	if m.doc == nil {
		return
	}

	if m.cfg.Bare {
		owner := m.eng.Owner()
		fresh := annotate.Bare(owner, m.doc.Text())
		m.eng.Store().Reconcile(annotate.Range{Start: 0, End: math.MaxInt}, owner, fresh)
		m.blocks = 0
		m.anns = m.eng.Store().Annotations()
		return
	}

	start, _ := m.doc.LineSpan(m.offset)
	_, end := m.doc.LineSpan(m.offset + m.docRows() - 1)
	m.blocks = m.eng.Rescan(m.doc, annotate.Range{Start: start, End: end})
	m.anns = m.eng.Store().Annotations()
}

func (m *model) reload() {
	doc, err := document.Load(m.cfg.Path)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.doc = doc
	m.errMsg = ""
	m.status = "reloaded"
}
