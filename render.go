package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/halcyon-studio/landing/internal/page"
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading…"
	}

	m.s.syncDoc()

	var body string
	if m.statsOpen {
		body = m.renderStats()
	} else {
		body = m.renderDoc()
	}

	return strings.Join([]string{
		m.renderHeader(),
		body,
		m.renderFooter(),
	}, "\n")
}

func (m model) renderHeader() string {
	title := appName + " — move better, together"
	return headerStyle.Render(padRight(title, max(0, m.width-4)))
}

func (m model) renderFooter() string {
	bindings := m.keys.pageHelp()
	if m.focusIdx >= 0 {
		bindings = m.keys.formHelp()
	}
	help := renderHelp(bindings)

	pct := 100
	if maxS := m.maxScroll(); maxS > 0 {
		pct = m.scrollTop * 100 / maxS
	}
	line := fmt.Sprintf("%s  %3d%%", help, pct)
	return footerStyle.Render(padRight(line, max(0, m.width-4)))
}

// renderDoc flattens the page, slices the scroll window, and pads the
// result to the content height so the footer stays put.
func (m model) renderDoc() string {
	lines := m.s.doc.Render(func(s *page.Section, title string) string {
		return sectionTitleStyle.Render("— " + title + " —")
	})
	window := page.Window(lines, m.scrollTop, m.contentRows())

	out := make([]string, m.contentRows())
	for i := range out {
		if i < len(window) {
			out[i] = truncate(window[i], m.s.contentWidth())
		}
	}
	return strings.Join(out, "\n")
}

// renderStats lists captured analytics events, newest last — the
// tag-manager preview pane, roughly.
func (m model) renderStats() string {
	events := m.s.queue.Events()
	rows := m.contentRows() - 2

	var lines []string
	lines = append(lines, sectionTitleStyle.Render(fmt.Sprintf("Captured events (%d) — watches live: %d", len(events), m.s.obs.watchCount())))
	start := 0
	if len(events) > rows && rows > 0 {
		start = len(events) - rows
	}
	for _, e := range events[start:] {
		attrs := make([]string, 0, len(e.Attributes))
		for k, v := range e.Attributes {
			attrs = append(attrs, fmt.Sprintf("%s=%v", k, v))
		}
		line := fmt.Sprintf("%s  %-22s %s", e.Timestamp.Format("15:04:05.000"), e.Name, strings.Join(attrs, " "))
		lines = append(lines, subtleStyle.Render(truncate(line, m.s.contentWidth()-4)))
	}

	content := overlayStyle.Render(strings.Join(lines, "\n"))
	pad := m.contentRows() - strings.Count(content, "\n") - 1
	if pad > 0 {
		content += strings.Repeat("\n", pad)
	}
	return content
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, boldKey(help.Key)+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func boldKey(text string) string {
	if text == "" {
		return ""
	}
	return "\x1b[1m" + text + "\x1b[22m"
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
