// Package history persists timed command runs on disk, one YAML file per
// normalized run name, so runs can be compared across invocations and tags.
package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Record is one stored run of a timed command.
type Record struct {
	Timestamp time.Time `yaml:"timestamp"`
	Seconds   float64   `yaml:"seconds"`
}

// Store persists run history below a single directory. Each run name maps
// to <dir>/<name>.yaml holding a chronological sequence of records.
type Store struct {
	dir string
}

// DefaultDir returns the per-user cache directory for run history.
func DefaultDir() string {
	return filepath.Join(xdg.CacheHome, "tictoc")
}

// NewStore returns a store rooted at dir, or at DefaultDir when dir is
// empty.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Store{dir: dir}
}

// Dir returns the directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".yaml")
}

// Append adds one record to name's history file, creating the file and the
// store directory as needed.
func (s *Store) Append(name string, rec Record) error {
	records, err := s.Load(name)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	records = append(records, rec)

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding history for %q: %w", name, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("writing history for %q: %w", name, err)
	}
	return nil
}

// Load reads name's history in insertion order. A missing file reports
// os.ErrNotExist.
func (s *Store) Load(name string) ([]Record, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("reading history for %q: %w", name, err)
	}
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding history for %q: %w", name, err)
	}
	return records, nil
}

// LoadMatching reads the history of every tag recorded for the given
// normalized command, keyed by tag. Run names have the form <tag>_<command>;
// the tag is everything before the first underscore.
func (s *Store) LoadMatching(command string) (map[string][]Record, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*_"+command+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("globbing history for %q: %w", command, err)
	}

	out := make(map[string][]Record, len(paths))
	for _, p := range paths {
		base := strings.TrimSuffix(filepath.Base(p), ".yaml")
		tag, _, ok := strings.Cut(base, "_")
		if !ok {
			continue
		}
		records, err := s.Load(base)
		if err != nil {
			return nil, err
		}
		out[tag] = records
	}
	return out, nil
}

// Clear removes stored history files. With command empty every file in the
// store is removed; otherwise only the files recorded for that normalized
// command.
func (s *Store) Clear(command string) error {
	pattern := filepath.Join(s.dir, "*.yaml")
	if command != "" {
		pattern = filepath.Join(s.dir, "*_"+command+".yaml")
	}
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing history: %w", err)
	}
	for _, p := range paths {
		if err := os.Remove(p); err != nil {
			return fmt.Errorf("removing %s: %w", p, err)
		}
	}
	return nil
}

var unsafeChars = regexp.MustCompile(`[^\w-]`)

// NormalizeName builds the storage name for a run from its tag and command
// parts, replacing anything outside [A-Za-z0-9_-] with dashes and joining
// the parts with underscores.
func NormalizeName(parts ...string) string {
	normalized := make([]string, len(parts))
	for i, part := range parts {
		normalized[i] = unsafeChars.ReplaceAllString(part, "-")
	}
	return strings.Join(normalized, "_")
}

// Seconds extracts just the runtimes from records, in order.
func Seconds(records []Record) []float64 {
	out := make([]float64, len(records))
	for i, rec := range records {
		out[i] = rec.Seconds
	}
	return out
}
