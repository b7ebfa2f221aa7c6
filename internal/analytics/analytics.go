// Package analytics dispatches named events to a set of sinks. Events
// are ephemeral: constructed, stamped, delivered, discarded. A failing
// sink is isolated — logged and skipped — so delivery to the remaining
// sinks and the caller's control flow are never disturbed.
package analytics

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/halcyon-studio/landing/internal/debounce"
)

// Event is one analytics record. ID, Timestamp and Page are stamped by
// the emitter at emit time.
type Event struct {
	ID         string
	Name       string
	Timestamp  time.Time
	Page       string
	Attributes map[string]any
}

// Sink accepts emitted events. Implementations may be called from the
// update loop or from a debounce timer goroutine and must tolerate
// both.
type Sink interface {
	Deliver(Event) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event) error

func (f SinkFunc) Deliver(e Event) error { return f(e) }

// Emitter stamps and fans out events. The sink list is fixed at
// construction (an empty list is fine: emitting is then a no-op), per
// the explicit-injection design — no global capability probing.
type Emitter struct {
	page   string
	sinks  []Sink
	now    func() time.Time
	logger *log.Logger
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithClock overrides the timestamp source. Tests use this to get
// deterministic stamps.
func WithClock(now func() time.Time) Option {
	return func(e *Emitter) { e.now = now }
}

// WithLogger sets where sink failures are reported.
func WithLogger(l *log.Logger) Option {
	return func(e *Emitter) { e.logger = l }
}

// NewEmitter builds an emitter for one page. sinks may be empty.
func NewEmitter(page string, sinks []Sink, opts ...Option) *Emitter {
	e := &Emitter{
		page:   page,
		sinks:  append([]Sink(nil), sinks...),
		now:    time.Now,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emit stamps the event and delivers it to every sink in order. Sink
// errors and panics are logged and swallowed; Emit never fails.
func (e *Emitter) Emit(name string, attrs map[string]any) {
	ev := Event{
		ID:         uuid.NewString(),
		Name:       name,
		Timestamp:  e.now(),
		Page:       e.page,
		Attributes: attrs,
	}
	for _, sink := range e.sinks {
		e.deliver(sink, ev)
	}
}

func (e *Emitter) deliver(sink Sink, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Printf("analytics: sink panic for %q: %v", ev.Name, r)
		}
	}()
	if err := sink.Deliver(ev); err != nil {
		e.logger.Printf("analytics: sink error for %q: %v", ev.Name, err)
	}
}

// Debounced returns an emit function for one high-frequency event name
// (hover tracking). Bursts of calls within the quiet window collapse
// into a single event carrying the last call's attributes.
func (e *Emitter) Debounced(name string, window time.Duration) func(attrs map[string]any) {
	d := debounce.New(func(attrs map[string]any) {
		e.Emit(name, attrs)
	}, window)
	return d.Call
}
