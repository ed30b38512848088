package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	header := m.renderHeader()
	body := m.renderDocument(m.width, m.docRows())
	footer := m.renderFooter()
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m model) renderHeader() string {
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(appTheme.Header)).Bold(true)
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(appTheme.Muted))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(appTheme.Error))

	mode := fmt.Sprintf("%d blocks", m.blocks)
	if m.cfg.Bare {
		mode = "bare"
	}
	status := fmt.Sprintf("%s | %d annotations | theme %s", mode, len(m.anns), appTheme.Name)
	if m.status != "" {
		status += " | " + m.status
	}
	if m.errMsg != "" {
		status += "  "
	}

	name := filepath.Base(m.cfg.Path)
	rest := m.width - lipgloss.Width(name) - 2
	line := nameStyle.Render(name) + "  " + statusStyle.Render(truncateText(status, rest))
	if m.errMsg != "" {
		rest -= lipgloss.Width(status)
		line += errStyle.Render(truncateText(m.errMsg, rest))
	}
	return padRightANSI(line, m.width)
}

func (m model) renderFooter() string {
	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(appTheme.Muted))
	text := "up/down move  pgup/pgdn jump  g/G top/bottom  r reload  q quit"
	return footerStyle.Render(truncateText(text, m.width))
}

func (m model) renderDocument(width int, height int) string {
	if width <= 0 || height <= 0 || m.doc == nil {
		return ""
	}

	st := newDocStyles(appTheme, m.doc.LineCount())

	lines := make([]string, 0, height)
	for n := m.offset; n < m.doc.LineCount() && len(lines) < height; n++ {
		start, end := m.doc.LineSpan(n)
		lineAnns := annsOverlappingLine(m.anns, start, end)
		lines = append(lines, renderDocLine(m.doc.Substring(start, end), n, start, lineAnns, width, st))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
