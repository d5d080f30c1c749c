package support

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/MeKo-Tech/tictoc/internal/history"
)

// RegisterHistorySteps registers step definitions for the run history store.
func (testCtx *TestContext) RegisterHistorySteps(sc *godog.ScenarioContext) {
	sc.Step(`^an empty history directory$`, testCtx.anEmptyHistoryDirectory)
	sc.Step(`^I append runs ([\d., ]+) under "([^"]*)"$`, testCtx.iAppendRuns)
	sc.Step(`^I clear the history for "([^"]*)"$`, testCtx.iClearTheHistoryFor)
	sc.Step(`^I load the runs matching "([^"]*)"$`, testCtx.iLoadRunsMatching)
	sc.Step(`^the loaded runs contain tag "([^"]*)" with (\d+) records?$`, testCtx.theLoadedRunsContain)
	sc.Step(`^no runs were loaded$`, testCtx.noRunsWereLoaded)
}

func (testCtx *TestContext) anEmptyHistoryDirectory() error {
	if err := testCtx.Store.Clear(""); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

func (testCtx *TestContext) iAppendRuns(list, name string) error {
	for _, field := range strings.Split(list, ",") {
		seconds, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", field, err)
		}
		rec := history.Record{Timestamp: time.Now(), Seconds: seconds}
		if err := testCtx.Store.Append(name, rec); err != nil {
			return fmt.Errorf("appending run: %w", err)
		}
	}
	return nil
}

func (testCtx *TestContext) iClearTheHistoryFor(command string) error {
	return testCtx.Store.Clear(command)
}

func (testCtx *TestContext) iLoadRunsMatching(command string) error {
	testCtx.LastLoaded, testCtx.LastError = testCtx.Store.LoadMatching(command)
	return testCtx.LastError
}

func (testCtx *TestContext) theLoadedRunsContain(tag string, count int) error {
	records, ok := testCtx.LastLoaded[tag]
	if !ok {
		return fmt.Errorf("tag %q not loaded, have %d tags", tag, len(testCtx.LastLoaded))
	}
	if len(records) != count {
		return fmt.Errorf("expected %d records for tag %q, got %d", count, tag, len(records))
	}
	return nil
}

func (testCtx *TestContext) noRunsWereLoaded() error {
	if len(testCtx.LastLoaded) != 0 {
		return fmt.Errorf("expected no runs, got %d tags", len(testCtx.LastLoaded))
	}
	return nil
}
