package timing

import "math"

// Measure runs fn with the timer running and guarantees a matching Stop on
// every exit path, including a panic inside fn. It returns the measured
// seconds, or ErrTimerRunning if the timer was already started.
func (t *Timer) Measure(fn func()) (seconds float64, err error) {
	if err := t.Start(); err != nil {
		return math.NaN(), err
	}
	defer func() {
		// Start succeeded above, so the timer is guaranteed to be running.
		seconds, _ = t.Stop()
	}()
	fn()
	return seconds, nil
}

// Wrap decorates fn with a measurement: each call of the returned function
// runs under Start/Stop, with fn's error passed through unchanged. Stop
// runs even when fn panics.
func (t *Timer) Wrap(fn func() error) func() error {
	return func() error {
		if err := t.Start(); err != nil {
			return err
		}
		defer func() {
			_, _ = t.Stop()
		}()
		return fn()
	}
}

// Instrument runs fn under t, forwarding its result and error unchanged.
func Instrument[T any](t *Timer, fn func() (T, error)) (T, error) {
	if err := t.Start(); err != nil {
		var zero T
		return zero, err
	}
	defer func() {
		_, _ = t.Stop()
	}()
	return fn()
}
