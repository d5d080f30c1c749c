package support

import (
	"fmt"
	"os"

	"github.com/MeKo-Tech/tictoc/internal/history"
	"github.com/MeKo-Tech/tictoc/pkg/timing"
)

// TestContext holds the state for integration tests.
type TestContext struct {
	// Timer state
	Registry *timing.Registry
	Reports  []string

	// History state
	Store   *history.Store
	TempDir string

	// Result of the last lookup
	LastStats  timing.Stats
	LastError  error
	LastLoaded map[string][]history.Record
}

// NewTestContext creates a new test context with its own registry and a
// history store backed by a temporary directory.
func NewTestContext() (*TestContext, error) {
	tempDir, err := os.MkdirTemp("", "tictoc-test-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	return &TestContext{
		Registry: timing.NewRegistry(),
		Store:    history.NewStore(tempDir),
		TempDir:  tempDir,
	}, nil
}

// Cleanup removes the temporary history directory.
func (testCtx *TestContext) Cleanup() error {
	if err := os.RemoveAll(testCtx.TempDir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove temp directory %s: %w", testCtx.TempDir, err)
	}
	return nil
}
