package main

import (
	"fmt"
	"sort"
	"sync"

	"github.com/halcyon-studio/landing/internal/gate"
	"github.com/halcyon-studio/landing/internal/page"
)

// ---------------------------------------------------------------------------
// Viewport visibility observer
// ---------------------------------------------------------------------------

// viewportObserver is the concrete visibility primitive gates register
// with. The update loop calls Scan after every scroll or resize; each
// scan recomputes every watched target's visible fraction from the
// document geometry and notifies. A target may be notified many times
// with the same fraction — exactly-once behaviour is the gate's job,
// not the observer's.
type viewportObserver struct {
	mu      sync.Mutex
	nextID  int
	watches map[int]watchEntry
}

type watchEntry struct {
	target string
	opts   gate.Options
	notify func(float64)
}

func newViewportObserver() *viewportObserver {
	return &viewportObserver{watches: map[int]watchEntry{}}
}

// Observe registers a watch and returns its cancel. Cancel is safe to
// call during a notification (gates do exactly that when they fire).
func (o *viewportObserver) Observe(target string, opts gate.Options, notify func(fraction float64)) (func(), error) {
	if notify == nil {
		return nil, fmt.Errorf("observe %s: nil notify", target)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.nextID
	o.nextID++
	o.watches[id] = watchEntry{target: target, opts: opts, notify: notify}
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.watches, id)
	}, nil
}

// Scan notifies every watch with its target's current visible
// fraction, in registration order. The watch set is snapshotted first
// so a notify callback can cancel (or a gate can detach) without
// deadlocking.
func (o *viewportObserver) Scan(doc *page.Doc, viewTop, viewHeight int) {
	ext := doc.Extents()

	o.mu.Lock()
	ids := make([]int, 0, len(o.watches))
	for id := range o.watches {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	snapshot := make([]watchEntry, 0, len(ids))
	for _, id := range ids {
		snapshot = append(snapshot, o.watches[id])
	}
	o.mu.Unlock()

	for _, w := range snapshot {
		e, ok := ext[w.target]
		if !ok {
			continue
		}
		w.notify(page.VisibleFraction(e.Top, e.Height, viewTop, viewHeight, w.opts.MarginRows))
	}
}

// watchCount reports how many registrations are live. Used by the
// stats overlay and tests.
func (o *viewportObserver) watchCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.watches)
}
