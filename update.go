package main

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case wireMsg:
		return m.handleWire(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case liveValidateMsg:
		return m.handleLiveValidate(msg)
	case submitDoneMsg:
		return m.handleSubmitDone(msg)
	case noticeExpireMsg:
		m.s.contact.expireBanner(msg.seq)
		return m, nil
	}
	return m, nil
}

// handleWire receives the program's Send and builds the debounced
// live-validation path: keystrokes land here, the debouncer waits for
// the quiet window, then re-enters the loop with a liveValidateMsg.
func (m model) handleWire(msg wireMsg) (tea.Model, tea.Cmd) {
	m.liveDebounce = newFieldDebouncer(m.s, msg.send)
	return m, nil
}

func (m model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.s.viewWidth = msg.Width
	m.s.viewHeight = msg.Height
	m = m.clampScroll()
	m.s.scan(m.scrollTop)
	return m, nil
}

// ---------------------------------------------------------------------------
// Key dispatch
// ---------------------------------------------------------------------------

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.statsOpen {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		default:
			m.statsOpen = false
			return m, nil
		}
	}
	if m.focusIdx >= 0 {
		return m.handleFormKey(msg)
	}
	return m.handlePageKey(msg)
}

func (m model) handlePageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.ScrollUp):
		return m.scrollBy(-1), nil
	case key.Matches(msg, keys.ScrollDn):
		return m.scrollBy(1), nil
	case key.Matches(msg, keys.PageUp):
		return m.scrollBy(-m.contentRows()), nil
	case key.Matches(msg, keys.PageDn):
		return m.scrollBy(m.contentRows()), nil
	case key.Matches(msg, keys.Top):
		m.scrollTop = 0
		m.s.scan(m.scrollTop)
		return m, nil
	case key.Matches(msg, keys.Bottom):
		m.scrollTop = m.maxScroll()
		m.s.scan(m.scrollTop)
		return m, nil
	case key.Matches(msg, keys.NextSect):
		return m.jumpSection(1), nil
	case key.Matches(msg, keys.PrevSect):
		return m.jumpSection(-1), nil
	case key.Matches(msg, keys.Left):
		return m.moveProgram(-1), nil
	case key.Matches(msg, keys.Right):
		return m.moveProgram(1), nil
	case key.Matches(msg, keys.FocusNext):
		return m.setFocus(0)
	case key.Matches(msg, keys.FocusPrev):
		return m.setFocus(m.submitIdx())
	case key.Matches(msg, keys.Stats):
		m.statsOpen = true
		return m, nil
	}
	// Digit keys act as the nav links: 1 through 4 jump straight to a
	// section anchor.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		if i := int(s[0] - '1'); i < len(sectionOrder()) {
			return m.jumpTo(sectionOrder()[i]), nil
		}
	}
	return m, nil
}

// handleFormKey runs while a form field or the submit control has
// focus. Keys the form does not claim fall through to the focused
// text input.
func (m model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Blur):
		m.blurCurrentField()
		return m.setFocus(-1)
	case key.Matches(msg, keys.FocusNext):
		next := m.focusIdx + 1
		if next > m.submitIdx() {
			next = -1 // cycle back out to the page
		}
		m.blurCurrentField()
		return m.setFocus(next)
	case key.Matches(msg, keys.FocusPrev):
		prev := m.focusIdx - 1
		m.blurCurrentField()
		return m.setFocus(prev)
	case key.Matches(msg, keys.Submit):
		if m.focusIdx == m.submitIdx() {
			return m.beginSubmit()
		}
		m.blurCurrentField()
		return m.setFocus(m.focusIdx + 1)
	}

	name, changed, cmd := m.s.contact.update(m.focusIdx, msg)
	if changed {
		if m.liveDebounce != nil {
			m.liveDebounce.Call(name)
		} else if f, ok := m.s.contact.field(name); ok {
			// Not wired to the loop (selfcheck, tests): validate inline.
			m.s.controller.LiveValidate(f)
		}
	}
	m.s.syncDoc()
	return m, cmd
}

// ---------------------------------------------------------------------------
// Scrolling and section navigation
// ---------------------------------------------------------------------------

// chromeRows is the header plus footer height.
const chromeRows = 2

func (m model) contentRows() int {
	rows := m.height - chromeRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m model) maxScroll() int {
	m.s.syncDoc()
	max := m.s.doc.Height() - m.contentRows()
	if max < 0 {
		max = 0
	}
	return max
}

func (m model) clampScroll() model {
	if m.scrollTop > m.maxScroll() {
		m.scrollTop = m.maxScroll()
	}
	if m.scrollTop < 0 {
		m.scrollTop = 0
	}
	return m
}

func (m model) scrollBy(delta int) model {
	m.scrollTop += delta
	m = m.clampScroll()
	m.s.scan(m.scrollTop)
	return m
}

func sectionOrder() []string {
	return []string{sectionHero, sectionPrograms, sectionGallery, sectionContact}
}

// currentSection is the section whose anchor the viewport sits at or
// after.
func (m model) currentSection() int {
	ext := m.s.doc.Extents()
	current := 0
	for i, id := range sectionOrder() {
		if e, ok := ext[id]; ok && m.scrollTop >= e.Top {
			current = i
		}
	}
	return current
}

// jumpSection scrolls to the next or previous section anchor and
// reports the navigation, mirroring an anchor-link click.
func (m model) jumpSection(dir int) model {
	order := sectionOrder()
	target := m.currentSection() + dir
	if target < 0 || target >= len(order) {
		return m
	}
	return m.jumpTo(order[target])
}

func (m model) jumpTo(id string) model {
	m.s.syncDoc()
	if top := m.s.doc.Anchor(id); top >= 0 {
		m.scrollTop = top
		m = m.clampScroll()
		m.s.emitter.Emit("nav_click", map[string]any{"target": id})
		m.s.scan(m.scrollTop)
	}
	return m
}

// moveProgram shifts the program card selection and feeds the
// debounced hover tracker; a quick sweep across cards emits a single
// event for the card the user settles on.
func (m model) moveProgram(dir int) model {
	sel := m.s.programSel + dir
	if sel < 0 || sel >= len(m.s.programs) {
		return m
	}
	m.s.programSel = sel
	m.s.syncDoc()
	if m.hoverEmit != nil {
		m.hoverEmit(map[string]any{
			"program": m.s.programs[sel].name,
			"index":   sel,
		})
	}
	return m
}

// ---------------------------------------------------------------------------
// Form focus and submission
// ---------------------------------------------------------------------------

// submitIdx is the focus position of the submit control, one past the
// last field.
func (m model) submitIdx() int {
	return len(m.s.contact.inputs)
}

// blurCurrentField validates the field losing focus immediately; blur
// validation does not wait for the debounce window.
func (m model) blurCurrentField() {
	if m.focusIdx < 0 || m.focusIdx >= len(m.s.contact.inputs) || m.s.contact.busy {
		return
	}
	if f, ok := m.s.contact.field(m.s.contact.specs[m.focusIdx].Name); ok {
		m.s.controller.LiveValidate(f)
	}
}

func (m model) setFocus(idx int) (tea.Model, tea.Cmd) {
	if idx < -1 || idx > m.submitIdx() {
		idx = -1
	}
	m.focusIdx = idx
	cmd := m.s.contact.focusInput(idx)
	m.s.syncDoc()
	return m, cmd
}

func (m model) beginSubmit() (tea.Model, tea.Cmd) {
	attempt := m.s.controller.BeginSubmit(m.s.contact.fields())
	m.s.syncDoc()

	// Validation failure: honor the controller's focus request.
	if req := m.s.contact.takeFocusReq(); req != "" {
		if i := m.s.contact.fieldIndex(req); i >= 0 {
			return m.setFocus(i)
		}
	}
	if attempt == nil {
		return m, nil
	}
	return m, func() tea.Msg {
		return submitDoneMsg{err: attempt.Do()}
	}
}

func (m model) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	m.s.controller.Finish(msg.err)
	m.s.syncDoc()
	seq := m.s.contact.bannerSeq()
	expiry := m.s.cfg.UI.NoticeExpiry
	return m, tea.Tick(expiry, func(time.Time) tea.Msg {
		return noticeExpireMsg{seq: seq}
	})
}

func (m model) handleLiveValidate(msg liveValidateMsg) (tea.Model, tea.Cmd) {
	if f, ok := m.s.contact.field(msg.field); ok {
		m.s.controller.LiveValidate(f)
		m.s.syncDoc()
	}
	return m, nil
}
