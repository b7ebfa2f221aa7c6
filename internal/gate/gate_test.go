package gate

import (
	"errors"
	"io"
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var discard = log.New(io.Discard, "", 0)

// fakeObserver records registrations and lets tests drive
// notifications by hand, including redelivery after cancel.
type fakeObserver struct {
	mu        sync.Mutex
	notify    func(float64)
	cancelled bool
	err       error
}

func (f *fakeObserver) Observe(_ string, _ Options, notify func(float64)) (func(), error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	f.notify = notify
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		f.cancelled = true
		f.mu.Unlock()
	}, nil
}

func (f *fakeObserver) send(fraction float64) {
	f.mu.Lock()
	notify := f.notify
	f.mu.Unlock()
	if notify != nil {
		notify(fraction)
	}
}

func TestFiresExactlyOnceAtThreshold(t *testing.T) {
	t.Parallel()

	fired := 0
	obs := &fakeObserver{}
	g := New("hero", Options{Threshold: 0.25}, SkipOnMissing, func() { fired++ }, discard)

	require.Equal(t, Unarmed, g.Phase())
	require.NoError(t, g.Arm(obs))
	require.Equal(t, Armed, g.Phase())

	obs.send(0.1) // below threshold
	require.Equal(t, 0, fired)
	require.Equal(t, Armed, g.Phase())

	obs.send(0.25)
	require.Equal(t, 1, fired)
	require.Equal(t, Fired, g.Phase())
	require.True(t, obs.cancelled, "gate must detach before running its action")

	// Redeliveries after firing, in any order, are ignored.
	obs.send(1.0)
	obs.send(0.3)
	obs.send(0.25)
	require.Equal(t, 1, fired)
	require.Equal(t, Fired, g.Phase())
}

func TestPhaseNeverRegresses(t *testing.T) {
	t.Parallel()

	obs := &fakeObserver{}
	g := New("programs", Options{Threshold: 0.5}, SkipOnMissing, func() {}, discard)
	require.NoError(t, g.Arm(obs))
	obs.send(0.9)
	require.Equal(t, Fired, g.Phase())

	// Arming a fired gate is a no-op, not a reset.
	require.NoError(t, g.Arm(obs))
	require.Equal(t, Fired, g.Phase())
}

func TestDoubleArmIsAnError(t *testing.T) {
	t.Parallel()

	obs := &fakeObserver{}
	g := New("hero", Options{Threshold: 0.5}, SkipOnMissing, func() {}, discard)
	require.NoError(t, g.Arm(obs))
	require.Error(t, g.Arm(obs))
	require.Equal(t, Armed, g.Phase())
}

func TestNilObserverFireOnMissing(t *testing.T) {
	t.Parallel()

	fired := false
	g := New("gallery-photo", Options{Threshold: 0.1}, FireOnMissing, func() { fired = true }, discard)

	// Fires synchronously during Arm, skipping Armed entirely.
	require.NoError(t, g.Arm(nil))
	require.True(t, fired)
	require.Equal(t, Fired, g.Phase())
}

func TestNilObserverSkipOnMissing(t *testing.T) {
	t.Parallel()

	fired := false
	g := New("hero", Options{Threshold: 0.1}, SkipOnMissing, func() { fired = true }, discard)

	err := g.Arm(nil)
	require.Error(t, err)
	require.False(t, fired)
	require.Equal(t, Unarmed, g.Phase())
}

func TestRegistrationErrorFallsBackPerMode(t *testing.T) {
	t.Parallel()

	broken := &fakeObserver{err: errors.New("observer unavailable")}

	fired := false
	lazy := New("gallery-photo", Options{Threshold: 0.1}, FireOnMissing, func() { fired = true }, discard)
	require.NoError(t, lazy.Arm(broken))
	require.True(t, fired)
	require.Equal(t, Fired, lazy.Phase())

	tracked := New("hero", Options{Threshold: 0.1}, SkipOnMissing, func() { t.Fatal("must not fire") }, discard)
	err := tracked.Arm(broken)
	require.Error(t, err)
	require.ErrorContains(t, err, "observer unavailable")
	require.Equal(t, Unarmed, tracked.Phase())
}

func TestConcurrentNotificationsFireOnce(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	fired := 0
	obs := &fakeObserver{}
	g := New("hero", Options{Threshold: 0.5}, SkipOnMissing, func() {
		mu.Lock()
		fired++
		mu.Unlock()
	}, discard)
	require.NoError(t, g.Arm(obs))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			obs.send(1.0)
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, fired)
}
