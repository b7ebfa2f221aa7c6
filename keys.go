package main

import "github.com/charmbracelet/bubbles/key"

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Quit      key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	PageUp    key.Binding
	PageDn    key.Binding
	Top       key.Binding
	Bottom    key.Binding
	NextSect  key.Binding
	PrevSect  key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding
	Submit    key.Binding
	Blur      key.Binding
	Left      key.Binding
	Right     key.Binding
	Stats     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ScrollUp:  key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		ScrollDn:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDn:    key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "page down")),
		Top:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		NextSect:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next section")),
		PrevSect:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prev section")),
		FocusNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "form")),
		FocusPrev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "form back")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		Blur:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to page")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev program")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next program")),
		Stats:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "events")),
	}
}

// pageHelp is the footer hint row while the page has focus.
func (k keyMap) pageHelp() []key.Binding {
	return []key.Binding{k.ScrollDn, k.NextSect, k.Right, k.FocusNext, k.Stats, k.Quit}
}

// formHelp is the footer hint row while a form field has focus.
func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.Submit, k.Blur}
}
