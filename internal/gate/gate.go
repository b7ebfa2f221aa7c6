// Package gate implements a one-shot visibility trigger. A gate is
// armed against a visibility observer and runs its bound action exactly
// once, the first time its target's visible fraction reaches the
// threshold. Duplicate or late notifications are ignored; the phase
// only ever moves forward.
package gate

import (
	"fmt"
	"log"
	"sync"
)

// Phase is the gate's lifecycle position.
type Phase int

const (
	// Unarmed: constructed, not yet watching.
	Unarmed Phase = iota
	// Armed: registered with the observer, watching.
	Armed
	// Fired: action has run; observation torn down.
	Fired
)

func (p Phase) String() string {
	switch p {
	case Unarmed:
		return "unarmed"
	case Armed:
		return "armed"
	case Fired:
		return "fired"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Options tune when a gate considers its target visible.
type Options struct {
	// Threshold is the minimum visible fraction, in (0, 1].
	Threshold float64
	// MarginRows extends the viewport by this many rows on each edge,
	// pre-triggering before the target actually enters view.
	MarginRows int
}

// Observer is the visibility-detection primitive. Observe registers
// interest in a target and returns a cancel function that detaches the
// registration. Implementations may notify any number of times, with
// duplicates.
type Observer interface {
	Observe(target string, opts Options, notify func(fraction float64)) (cancel func(), err error)
}

// FallbackMode decides what Arm does when no observer is available or
// registration fails.
type FallbackMode int

const (
	// FireOnMissing runs the action immediately and unconditionally.
	// Used for lazy content: degraded means "load now", never "never
	// load".
	FireOnMissing FallbackMode = iota
	// SkipOnMissing leaves the gate Unarmed and reports the failure.
	// Used for view tracking: a lost event beats a wrong one.
	SkipOnMissing
)

// Gate guards one action behind one target's visibility.
type Gate struct {
	mu       sync.Mutex
	phase    Phase
	target   string
	opts     Options
	action   func()
	fallback FallbackMode
	cancel   func()
	logger   *log.Logger
}

// New builds a gate. action must be non-nil; it runs at most once for
// the life of the gate.
func New(target string, opts Options, fallback FallbackMode, action func(), logger *log.Logger) *Gate {
	if logger == nil {
		logger = log.Default()
	}
	return &Gate{
		target:   target,
		opts:     opts,
		action:   action,
		fallback: fallback,
		logger:   logger,
	}
}

// Phase reports the current lifecycle position.
func (g *Gate) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// Target returns the target identifier the gate watches.
func (g *Gate) Target() string { return g.target }

// Arm moves Unarmed → Armed by registering with obs. With a nil
// observer, or when registration fails, the fallback mode decides:
// FireOnMissing runs the action synchronously (Unarmed → Fired,
// skipping Armed); SkipOnMissing stays Unarmed and returns the error.
// Arming twice is an error; arming a fired gate is a no-op.
func (g *Gate) Arm(obs Observer) error {
	g.mu.Lock()
	switch g.phase {
	case Fired:
		g.mu.Unlock()
		return nil
	case Armed:
		g.mu.Unlock()
		return fmt.Errorf("gate %s: already armed", g.target)
	}

	if obs == nil {
		return g.degradeLocked(fmt.Errorf("gate %s: no visibility observer", g.target))
	}

	cancel, err := obs.Observe(g.target, g.opts, g.notify)
	if err != nil {
		return g.degradeLocked(fmt.Errorf("gate %s: observe: %w", g.target, err))
	}
	g.cancel = cancel
	g.phase = Armed
	g.mu.Unlock()
	return nil
}

// degradeLocked applies the fallback policy. Called with g.mu held;
// releases it.
func (g *Gate) degradeLocked(cause error) error {
	switch g.fallback {
	case FireOnMissing:
		g.logger.Printf("gate: %v; firing immediately", cause)
		g.phase = Fired
		action := g.action
		g.mu.Unlock()
		action()
		return nil
	default:
		g.logger.Printf("gate: %v; skipping", cause)
		g.mu.Unlock()
		return cause
	}
}

// notify is the observer callback. The first notification at or above
// the threshold detaches the registration and runs the action; every
// other notification is dropped.
func (g *Gate) notify(fraction float64) {
	g.mu.Lock()
	if g.phase != Armed || fraction < g.opts.Threshold {
		g.mu.Unlock()
		return
	}
	g.phase = Fired
	cancel := g.cancel
	g.cancel = nil
	action := g.action
	g.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	action()
}
