package timing

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/montanaflynn/stats"
)

// Registry accumulates named timing results: a cumulative total per name
// plus the full ordered history of every value added under that name.
// One process-wide instance (Default) is shared by all named timers unless
// a timer is pointed elsewhere.
//
// A single mutex guards both maps. It is held only for the duration of one
// call, never across timed work, so concurrent timers may add freely.
type Registry struct {
	mu      sync.Mutex
	totals  map[string]float64
	samples map[string][]float64
}

// Default is the process-wide registry used by named timers.
var Default = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		totals:  make(map[string]float64),
		samples: make(map[string][]float64),
	}
}

// Stats is a point-in-time summary of one name's history. Stdev is NaN when
// fewer than two values have been recorded.
type Stats struct {
	Name   string
	Count  int
	Total  float64
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Stdev  float64
}

// Add records value under name, updating both the cumulative total and the
// sample history. The entry is created on first use.
func (r *Registry) Add(name string, value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples[name] = append(r.samples[name], value)
	r.totals[name] += value
}

// Set rejects direct assignment of a cumulative total; Add is the only
// sanctioned write path.
func (r *Registry) Set(string, float64) error {
	return ErrDirectAssignment
}

// Clear removes every name from the registry. A name added afterwards
// starts again from zero.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.totals = make(map[string]float64)
	r.samples = make(map[string][]float64)
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.samples))
	for name := range r.samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Samples returns a copy of the ordered value history for name.
func (r *Registry) Samples(name string) ([]float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	values, ok := r.samples[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimer, name)
	}
	out := make([]float64, len(values))
	copy(out, values)
	return out, nil
}

// Apply runs fn over a copy of name's sample history.
func (r *Registry) Apply(name string, fn func(values []float64) float64) (float64, error) {
	values, err := r.Samples(name)
	if err != nil {
		return 0, err
	}
	return fn(values), nil
}

// Total returns the cumulative sum of every value added under name. It
// reads the cached total, which by construction always equals the sum of
// the sample history.
func (r *Registry) Total(name string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total, ok := r.totals[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTimer, name)
	}
	return total, nil
}

// Count returns the number of values added under name.
func (r *Registry) Count(name string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	values, ok := r.samples[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTimer, name)
	}
	return len(values), nil
}

// Min returns the smallest value recorded under name.
func (r *Registry) Min(name string) (float64, error) {
	return r.Apply(name, func(values []float64) float64 {
		v, _ := stats.Min(orZero(values))
		return v
	})
}

// Max returns the largest value recorded under name.
func (r *Registry) Max(name string) (float64, error) {
	return r.Apply(name, func(values []float64) float64 {
		v, _ := stats.Max(orZero(values))
		return v
	})
}

// Mean returns the arithmetic mean of name's history.
func (r *Registry) Mean(name string) (float64, error) {
	return r.Apply(name, func(values []float64) float64 {
		v, _ := stats.Mean(orZero(values))
		return v
	})
}

// Median returns the median of name's history.
func (r *Registry) Median(name string) (float64, error) {
	return r.Apply(name, func(values []float64) float64 {
		v, _ := stats.Median(orZero(values))
		return v
	})
}

// Stdev returns the sample standard deviation of name's history, or NaN
// when fewer than two values exist.
func (r *Registry) Stdev(name string) (float64, error) {
	return r.Apply(name, sampleStdev)
}

// Get returns the full summary for name, computed from one consistent
// snapshot of the history.
func (r *Registry) Get(name string) (Stats, error) {
	r.mu.Lock()
	values, ok := r.samples[name]
	if !ok {
		r.mu.Unlock()
		return Stats{}, fmt.Errorf("%w: %q", ErrUnknownTimer, name)
	}
	total := r.totals[name]
	snapshot := make([]float64, len(values))
	copy(snapshot, values)
	r.mu.Unlock()

	padded := orZero(snapshot)
	s := Stats{Name: name, Count: len(snapshot), Total: total}
	s.Min, _ = stats.Min(padded)
	s.Max, _ = stats.Max(padded)
	s.Mean, _ = stats.Mean(padded)
	s.Median, _ = stats.Median(padded)
	s.Stdev = sampleStdev(snapshot)
	return s, nil
}

func sampleStdev(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	v, _ := stats.StandardDeviationSample(values)
	return v
}

// orZero substitutes a single zero for an empty history. An existing name
// always has at least one sample, so this path is defensive only.
func orZero(values []float64) []float64 {
	if len(values) == 0 {
		return []float64{0}
	}
	return values
}
