package timing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureRecordsRun(t *testing.T) {
	clock := &fakeClock{}
	registry := NewRegistry()
	timer := &Timer{Name: "work", Clock: clock.Now, Registry: registry}

	seconds, err := timer.Measure(func() {
		clock.Advance(2 * time.Second)
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, seconds, 1e-9)
	assert.False(t, timer.Running())

	count, err := registry.Count("work")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMeasureStopsOnPanic(t *testing.T) {
	registry := NewRegistry()
	timer := &Timer{Name: "panicky", Registry: registry}

	assert.Panics(t, func() {
		_, _ = timer.Measure(func() {
			panic("boom")
		})
	})

	// The timer is stopped and the aborted run is still recorded.
	assert.False(t, timer.Running())
	count, err := registry.Count("panicky")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMeasureWhileRunning(t *testing.T) {
	timer := &Timer{}
	require.NoError(t, timer.Start())

	called := false
	_, err := timer.Measure(func() { called = true })
	require.ErrorIs(t, err, ErrTimerRunning)
	assert.False(t, called)

	_, err = timer.Stop()
	require.NoError(t, err)
}

func TestWrapForwardsError(t *testing.T) {
	registry := NewRegistry()
	timer := &Timer{Name: "wrapped", Registry: registry}

	sentinel := errors.New("work failed")
	fn := timer.Wrap(func() error { return sentinel })

	// The wrapped function is reusable: the timer cycles on every call and
	// the error comes through unchanged each time.
	require.ErrorIs(t, fn(), sentinel)
	require.ErrorIs(t, fn(), sentinel)

	count, err := registry.Count("wrapped")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestWrapStopsOnPanic(t *testing.T) {
	timer := &Timer{}
	fn := timer.Wrap(func() error { panic("boom") })

	assert.Panics(t, func() { _ = fn() })
	assert.False(t, timer.Running())
}

func TestInstrumentForwardsResult(t *testing.T) {
	registry := NewRegistry()
	timer := &Timer{Name: "instrumented", Registry: registry}

	got, err := Instrument(timer, func() (string, error) {
		return "result", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "result", got)

	sentinel := errors.New("nope")
	_, err = Instrument(timer, func() (int, error) {
		return 0, sentinel
	})
	require.ErrorIs(t, err, sentinel)

	count, err := registry.Count("instrumented")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestInstrumentWhileRunning(t *testing.T) {
	timer := &Timer{}
	require.NoError(t, timer.Start())

	_, err := Instrument(timer, func() (int, error) { return 1, nil })
	require.ErrorIs(t, err, ErrTimerRunning)
}
