package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/halcyon-studio/landing/internal/analytics"
	"github.com/halcyon-studio/landing/internal/config"
	"github.com/halcyon-studio/landing/internal/debounce"
	"github.com/halcyon-studio/landing/internal/form"
	"github.com/halcyon-studio/landing/internal/gate"
	"github.com/halcyon-studio/landing/internal/page"
)

// ---------------------------------------------------------------------------
// Domain types
// ---------------------------------------------------------------------------

const appName = "Halcyon Movement Studio"

// pageURL identifies this page in every emitted analytics event.
const pageURL = "/studio"

// Section IDs double as gate targets and jump anchors.
const (
	sectionHero     = "hero"
	sectionPrograms = "programs"
	sectionGallery  = "gallery"
	sectionContact  = "contact"
)

// program is one card in the programs section.
type program struct {
	name  string
	blurb string
}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

// wireMsg hands the model its way back into the event loop. Sent once
// by main right after the program is constructed; the debounced live
// validation action needs it to re-enter Update.
type wireMsg struct {
	send func(tea.Msg)
}

// submitDoneMsg carries the result of the one network attempt.
type submitDoneMsg struct {
	err error
}

// liveValidateMsg asks for a single field to be re-validated. Arrives
// through the debouncer after typing goes quiet.
type liveValidateMsg struct {
	field string
}

// noticeExpireMsg removes a transient banner. seq guards against
// expiring a newer banner than the one this tick was scheduled for.
type noticeExpireMsg struct {
	seq int
}

// ---------------------------------------------------------------------------
// Session: loop-owned mutable state shared with gate actions
// ---------------------------------------------------------------------------

// session holds everything the gate actions and the form controller
// close over. All of it is owned by the update loop; gate actions run
// synchronously inside Scan or Arm, never concurrently with Update.
type session struct {
	cfg        config.Config
	emitter    *analytics.Emitter
	queue      *analytics.QueueSink
	doc        *page.Doc
	obs        *viewportObserver
	contact    *contactForm
	controller *form.Controller
	gates      []*gate.Gate
	logger     *log.Logger

	programs   []program
	programSel int

	// Current viewport, refreshed on every resize so the section-view
	// gate actions can report real dimensions.
	viewWidth  int
	viewHeight int
}

// newSession builds the page document, the analytics pipeline, the
// form machinery, and the three visibility gates. Gates are armed
// here; tracking gates that cannot register stay unarmed and are only
// logged, while the lazy gallery slot loads immediately.
func newSession(cfg config.Config, sinks []analytics.Sink, sub form.Submitter, logger *log.Logger) *session {
	if logger == nil {
		logger = log.Default()
	}
	queue := analytics.NewQueueSink()
	emitter := analytics.NewEmitter(pageURL, append([]analytics.Sink{queue}, sinks...), analytics.WithLogger(logger))

	s := &session{
		cfg:      cfg,
		emitter:  emitter,
		queue:    queue,
		doc:      buildDoc(),
		obs:      newViewportObserver(),
		logger:   logger,
		programs: studioPrograms(),
	}
	s.contact = newContactForm(contactFieldSpecs())
	s.controller = form.NewController(cfg.Contact.EndpointURL, cfg.Contact.SubmitTimeout, sub, s.contact, emitter, logger)

	trackOpts := gate.Options{Threshold: cfg.Track.SectionThreshold, MarginRows: 0}
	lazyOpts := gate.Options{Threshold: cfg.Track.LazyThreshold, MarginRows: cfg.Track.MarginRows}

	for _, id := range []string{sectionHero, sectionPrograms} {
		id := id
		g := gate.New(id, trackOpts, gate.SkipOnMissing, func() {
			s.emitter.Emit("section_view", map[string]any{
				"section":         id,
				"viewport_width":  s.viewWidth,
				"viewport_height": s.viewHeight,
			})
		}, logger)
		s.gates = append(s.gates, g)
	}

	gallery := s.doc.Section(sectionGallery)
	g := gate.New(sectionGallery, lazyOpts, gate.FireOnMissing, func() {
		gallery.Lazy.Load()
		s.emitter.Emit("image_load", map[string]any{"section": sectionGallery})
	}, logger)
	s.gates = append(s.gates, g)

	for _, g := range s.gates {
		if err := g.Arm(s.obs); err != nil {
			logger.Printf("tracking disabled for %s: %v", g.Target(), err)
		}
	}
	return s
}

// scan refreshes the generated section bodies (their heights feed the
// layout) and pushes current visibility fractions to every armed gate.
func (s *session) scan(scrollTop int) {
	s.syncDoc()
	s.obs.Scan(s.doc, scrollTop, s.viewHeight-chromeRows)
}

// syncDoc regenerates the program cards and the contact block from
// live state so extents and rendering agree.
func (s *session) syncDoc() {
	if sec := s.doc.Section(sectionPrograms); sec != nil {
		sec.Body = programLines(s.programs, s.programSel)
	}
	if sec := s.doc.Section(sectionContact); sec != nil {
		sec.Body = s.contact.lines(s.contentWidth())
	}
}

func (s *session) contentWidth() int {
	w := s.viewWidth
	if s.cfg.UI.MaxWidth > 0 && w > s.cfg.UI.MaxWidth {
		w = s.cfg.UI.MaxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	s    *session
	keys keyMap

	width     int
	height    int
	scrollTop int

	// moving the program card selection feeds the debounced hover emit
	hoverEmit func(map[string]any)

	// index into the form's focus order, -1 when the page has focus
	focusIdx int

	statsOpen bool

	liveDebounce *debounce.Debounced[string]
}

func newModel(s *session) model {
	return model{
		s:         s,
		keys:      newKeyMap(),
		focusIdx:  -1,
		hoverEmit: s.emitter.Debounced("program_hover", s.cfg.Track.HoverDebounce),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// newFieldDebouncer builds the live-validation debouncer: typing calls
// it with the field name, and one quiet window later the loop gets a
// liveValidateMsg for that field. Last keystroke wins.
func newFieldDebouncer(s *session, send func(tea.Msg)) *debounce.Debounced[string] {
	return debounce.New(func(name string) {
		send(liveValidateMsg{field: name})
	}, s.cfg.Contact.InputDebounce)
}
