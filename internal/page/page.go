// Package page models the document the interaction layer acts on: a
// vertical stack of sections with known heights, some holding lazy
// content slots, plus the pure geometry that answers "how much of this
// section is in view".
package page

import "strings"

// LazySlot is deferred content. Placeholder lines render until Load is
// called, which swaps in the real lines exactly once.
type LazySlot struct {
	Placeholder []string
	Content     []string
	loaded      bool
}

// Load swaps the placeholder for the real content. Safe to call more
// than once; later calls do nothing.
func (s *LazySlot) Load() {
	s.loaded = true
}

// Loaded reports whether the real content is showing.
func (s *LazySlot) Loaded() bool { return s.loaded }

// Lines returns what should currently render for the slot.
func (s *LazySlot) Lines() []string {
	if s.loaded {
		return s.Content
	}
	return s.Placeholder
}

// Section is one block of the document.
type Section struct {
	ID    string
	Title string
	Body  []string
	Lazy  *LazySlot
}

// Lines renders the section body with its lazy slot (if any) appended.
func (s *Section) Lines() []string {
	if s.Lazy == nil {
		return s.Body
	}
	out := make([]string, 0, len(s.Body)+len(s.Lazy.Lines()))
	out = append(out, s.Body...)
	out = append(out, s.Lazy.Lines()...)
	return out
}

// Doc stacks sections and answers position queries against the
// rendered layout. Heights are recomputed from the current section
// content on every query, since lazy loads change them.
type Doc struct {
	Sections []*Section
	// Gap is the number of blank rows between sections.
	Gap int
}

// Extent is a section's bounding box in document rows.
type Extent struct {
	Top    int
	Height int
}

// Extents returns every section's bounding box, in section order.
// Each section occupies a title row plus its current lines.
func (d *Doc) Extents() map[string]Extent {
	out := make(map[string]Extent, len(d.Sections))
	top := 0
	for _, s := range d.Sections {
		h := 1 + len(s.Lines())
		out[s.ID] = Extent{Top: top, Height: h}
		top += h + d.Gap
	}
	return out
}

// Height is the total document height in rows.
func (d *Doc) Height() int {
	h := 0
	for i, s := range d.Sections {
		if i > 0 {
			h += d.Gap
		}
		h += 1 + len(s.Lines())
	}
	return h
}

// Section returns the section with the given ID, or nil.
func (d *Doc) Section(id string) *Section {
	for _, s := range d.Sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Anchor returns the document row a jump to the section should scroll
// to, or -1 for an unknown ID.
func (d *Doc) Anchor(id string) int {
	ext, ok := d.Extents()[id]
	if !ok {
		return -1
	}
	return ext.Top
}

// VisibleFraction reports what proportion of a box [top, top+height) is
// inside the viewport [viewTop, viewTop+viewHeight), with the viewport
// extended by marginRows on both edges. Degenerate boxes and viewports
// yield 0.
func VisibleFraction(top, height, viewTop, viewHeight, marginRows int) float64 {
	if height <= 0 || viewHeight <= 0 {
		return 0
	}
	lo := viewTop - marginRows
	hi := viewTop + viewHeight + marginRows
	from := max(top, lo)
	to := min(top+height, hi)
	if to <= from {
		return 0
	}
	return float64(to-from) / float64(height)
}

// Window slices the rendered document lines to the viewport.
func Window(lines []string, viewTop, viewHeight int) []string {
	if viewTop < 0 {
		viewTop = 0
	}
	if viewTop >= len(lines) || viewHeight <= 0 {
		return nil
	}
	end := min(viewTop+viewHeight, len(lines))
	return lines[viewTop:end]
}

// Render flattens the document to lines: title, body, gap, repeated.
func (d *Doc) Render(decorate func(s *Section, title string) string) []string {
	var out []string
	for i, s := range d.Sections {
		if i > 0 {
			for g := 0; g < d.Gap; g++ {
				out = append(out, "")
			}
		}
		title := s.Title
		if decorate != nil {
			title = decorate(s, title)
		} else if title != "" {
			title = strings.ToUpper(title)
		}
		out = append(out, title)
		out = append(out, s.Lines()...)
	}
	return out
}
