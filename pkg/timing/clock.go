package timing

import "time"

// Clock supplies time readings for elapsed-time measurement. Readings are
// only ever compared with each other via time.Time.Sub, so for values
// produced by time.Now it is the embedded monotonic reading that drives the
// computation; wall-clock adjustments never skew a measurement.
type Clock func() time.Time
