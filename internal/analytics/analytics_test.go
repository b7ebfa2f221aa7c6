package analytics

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestEmitStampsAndFansOut(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	a := NewQueueSink()
	b := NewQueueSink()
	em := NewEmitter("/studio", []Sink{a, b}, WithClock(fixedClock(stamp)))

	em.Emit("nav_click", map[string]any{"target": "programs"})

	require.Equal(t, 1, a.Len())
	require.Equal(t, 1, b.Len())
	got := a.Events()[0]
	require.Equal(t, "nav_click", got.Name)
	require.Equal(t, "/studio", got.Page)
	require.Equal(t, stamp, got.Timestamp)
	require.NotEmpty(t, got.ID)
	require.Equal(t, "programs", got.Attributes["target"])
}

func TestEventIDsAreUnique(t *testing.T) {
	t.Parallel()

	q := NewQueueSink()
	em := NewEmitter("/studio", []Sink{q})
	for i := 0; i < 50; i++ {
		em.Emit("section_view", nil)
	}
	seen := map[string]bool{}
	for _, ev := range q.Events() {
		require.False(t, seen[ev.ID], "duplicate id %s", ev.ID)
		seen[ev.ID] = true
	}
}

func TestFailingSinkIsIsolated(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	logger := log.New(&logBuf, "", 0)

	failing := SinkFunc(func(Event) error { return errors.New("endpoint gone") })
	panicking := SinkFunc(func(Event) error { panic("sink blew up") })
	q := NewQueueSink()

	em := NewEmitter("/studio", []Sink{failing, panicking, q}, WithLogger(logger))

	// Must not panic, and the healthy sink must still receive the event.
	em.Emit("form_submit_start", nil)

	require.Equal(t, 1, q.Len())
	logged := logBuf.String()
	require.Contains(t, logged, "endpoint gone")
	require.Contains(t, logged, "sink panic")
}

func TestEmitterWithNoSinksIsANoOp(t *testing.T) {
	t.Parallel()

	em := NewEmitter("/studio", nil)
	em.Emit("section_view", map[string]any{"id": "hero"})
}

func TestDebouncedEmitCollapsesBursts(t *testing.T) {
	t.Parallel()

	q := NewQueueSink()
	em := NewEmitter("/studio", []Sink{q})
	emit := em.Debounced("program_hover", 25*time.Millisecond)

	for i := 0; i < 10; i++ {
		emit(map[string]any{"program": i})
	}

	deadline := time.Now().Add(2 * time.Second)
	for q.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(60 * time.Millisecond)

	events := q.Events()
	require.Len(t, events, 1)
	require.Equal(t, "program_hover", events[0].Name)
	require.Equal(t, 9, events[0].Attributes["program"])
}

func TestLogSinkOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := LogSink{Logger: log.New(&buf, "", 0)}
	em := NewEmitter("/studio", []Sink{sink}, WithClock(fixedClock(time.Unix(0, 0))))

	em.Emit("image_load", map[string]any{"section": "gallery", "rows": 12})

	line := strings.TrimSpace(buf.String())
	require.Contains(t, line, "event name=image_load")
	require.Contains(t, line, "rows=12 section=gallery")
}

func TestLogSinkNilLogger(t *testing.T) {
	t.Parallel()

	err := LogSink{}.Deliver(Event{Name: "x"})
	require.Error(t, err)
}
