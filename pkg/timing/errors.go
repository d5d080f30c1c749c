package timing

import "errors"

// Errors reported by Timer and Registry. Every one of them signals misuse
// of the API by the caller; none is transient or retryable.
var (
	// ErrTimerRunning is returned by Start when the timer is already running.
	ErrTimerRunning = errors.New("timer is running; use Stop to stop it")

	// ErrTimerNotRunning is returned by Stop when the timer has not been
	// started.
	ErrTimerNotRunning = errors.New("timer is not running; use Start to start it")

	// ErrUnknownTimer is returned by registry statistics for a name that has
	// never been added, or was removed by Clear.
	ErrUnknownTimer = errors.New("unknown timer")

	// ErrDirectAssignment is returned by Registry.Set: cumulative totals can
	// only be updated through Add.
	ErrDirectAssignment = errors.New("registry does not support direct assignment; use Add to update values")
)
