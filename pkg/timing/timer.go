// Package timing provides a stopwatch for measuring elapsed wall-clock time
// around a unit of work, with customizable reporting and accumulation of
// named results into a process-wide statistics registry.
package timing

import (
	"math"
	"time"
)

// Timer measures elapsed wall-clock time around a unit of work. The zero
// value is ready to use: anonymous, silent, reporting with DefaultText and
// accumulating nowhere. A named timer deposits every completed measurement
// into its registry (Default unless overridden), keyed by name. Names are
// not unique; several timers may accumulate under the same name.
//
// A Timer is reusable: Start and Stop may cycle any number of times. It is
// not safe for concurrent use by multiple goroutines; share the Registry,
// not the Timer.
type Timer struct {
	// Name links completed measurements to a registry entry. Empty means no
	// accumulation.
	Name string

	// Text renders the report emitted on Stop. Nil means DefaultText.
	Text Text

	// InitialText, when set, is rendered and emitted on Start.
	InitialText InitialText

	// Sink receives rendered reports. Nil means report nothing.
	Sink Sink

	// Registry receives completed measurements of named timers. Nil means
	// the process-wide Default registry.
	Registry *Registry

	// Clock supplies time readings. Nil means the system monotonic clock.
	Clock Clock

	startedAt time.Time
	running   bool
	last      float64
	measured  bool
}

// Last returns the duration in seconds of the most recently completed
// measurement, or NaN if the timer has never completed one.
func (t *Timer) Last() float64 {
	if !t.measured {
		return math.NaN()
	}
	return t.last
}

// Running reports whether the timer is between Start and a matching Stop.
func (t *Timer) Running() bool {
	return t.running
}

// Start begins a new measurement. If InitialText is set and a sink is
// present, the start message is emitted first, before the clock is read.
// Start fails with ErrTimerRunning if a measurement is already in progress,
// leaving the original interval intact.
func (t *Timer) Start() error {
	if t.running {
		return ErrTimerRunning
	}
	if t.InitialText != nil && t.Sink != nil {
		t.Sink(t.InitialText.RenderInitial(t.Name))
	}
	t.startedAt = t.now()
	t.running = true
	return nil
}

// Stop ends the current measurement and returns the elapsed seconds. The
// report is rendered and emitted through the sink if one is set, and the
// result is added to the registry if the timer is named. Stop fails with
// ErrTimerNotRunning when no measurement is in progress; Last is unchanged.
func (t *Timer) Stop() (float64, error) {
	if !t.running {
		return math.NaN(), ErrTimerNotRunning
	}
	t.last = t.now().Sub(t.startedAt).Seconds()
	t.measured = true
	t.running = false
	t.startedAt = time.Time{}

	if t.Sink != nil {
		text := t.Text
		if text == nil {
			text = DefaultText
		}
		t.Sink(text.Render(t.Name, t.last))
	}
	if t.Name != "" {
		t.registry().Add(t.Name, t.last)
	}
	return t.last, nil
}

func (t *Timer) now() time.Time {
	if t.Clock != nil {
		return t.Clock()
	}
	return time.Now()
}

func (t *Timer) registry() *Registry {
	if t.Registry != nil {
		return t.Registry
	}
	return Default
}
