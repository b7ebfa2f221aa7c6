package analytics

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
)

// QueueSink keeps delivered events in order, in memory, for the
// lifetime of the page view. It plays the role a tag-manager data
// layer plays on a web page: other code (the stats overlay, tests)
// reads it back out.
type QueueSink struct {
	mu     sync.Mutex
	events []Event
}

// NewQueueSink returns an empty queue.
func NewQueueSink() *QueueSink {
	return &QueueSink{}
}

// Deliver appends the event. Never fails.
func (q *QueueSink) Deliver(e Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, e)
	return nil
}

// Events returns a snapshot of everything delivered so far, oldest
// first.
func (q *QueueSink) Events() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Event(nil), q.events...)
}

// Len reports how many events have been delivered.
func (q *QueueSink) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// LogSink writes one line per event to a logger.
type LogSink struct {
	Logger *log.Logger
}

// Deliver formats the event compactly. Attribute keys are sorted so
// log lines are stable.
func (s LogSink) Deliver(e Event) error {
	if s.Logger == nil {
		return fmt.Errorf("log sink: nil logger")
	}
	s.Logger.Printf("event name=%s id=%s %s", e.Name, e.ID, formatAttrs(e.Attributes))
	return nil
}

func formatAttrs(attrs map[string]any) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, attrs[k]))
	}
	return strings.Join(parts, " ")
}
