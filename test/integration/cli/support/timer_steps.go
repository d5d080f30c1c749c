package support

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/MeKo-Tech/tictoc/pkg/timing"
)

const floatTolerance = 1e-9

// RegisterTimerSteps registers step definitions for timer and registry
// behavior.
func (testCtx *TestContext) RegisterTimerSteps(sc *godog.ScenarioContext) {
	sc.Step(`^a clean timer registry$`, testCtx.aCleanTimerRegistry)
	sc.Step(`^I record durations ([\d., ]+) under name "([^"]*)"$`, testCtx.iRecordDurations)
	sc.Step(`^I time a short task named "([^"]*)"$`, testCtx.iTimeAShortTask)
	sc.Step(`^I ask for statistics of "([^"]*)"$`, testCtx.iAskForStatistics)
	sc.Step(`^I clear the registry$`, testCtx.iClearTheRegistry)
	sc.Step(`^the total for "([^"]*)" is ([\d.]+) seconds$`, testCtx.theTotalIs)
	sc.Step(`^the count for "([^"]*)" is (\d+)$`, testCtx.theCountIs)
	sc.Step(`^the mean for "([^"]*)" is ([\d.]+) seconds$`, testCtx.theMeanIs)
	sc.Step(`^the median for "([^"]*)" is ([\d.]+) seconds$`, testCtx.theMedianIs)
	sc.Step(`^the lookup fails with an unknown timer error$`, testCtx.theLookupFailsUnknown)
	sc.Step(`^the registry has no timer names$`, testCtx.theRegistryIsEmpty)
	sc.Step(`^the sink received a report starting with "([^"]*)"$`, testCtx.theSinkReceivedReport)
}

func (testCtx *TestContext) aCleanTimerRegistry() error {
	testCtx.Registry = timing.NewRegistry()
	testCtx.Reports = nil
	return nil
}

func (testCtx *TestContext) iRecordDurations(list, name string) error {
	for _, field := range strings.Split(list, ",") {
		value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", field, err)
		}
		testCtx.Registry.Add(name, value)
	}
	return nil
}

func (testCtx *TestContext) iTimeAShortTask(name string) error {
	timer := &timing.Timer{
		Name:     name,
		Registry: testCtx.Registry,
		Sink:     func(report string) { testCtx.Reports = append(testCtx.Reports, report) },
	}
	_, err := timer.Measure(func() {
		time.Sleep(5 * time.Millisecond)
	})
	return err
}

func (testCtx *TestContext) iAskForStatistics(name string) error {
	testCtx.LastStats, testCtx.LastError = testCtx.Registry.Get(name)
	return nil
}

func (testCtx *TestContext) iClearTheRegistry() error {
	testCtx.Registry.Clear()
	return nil
}

func (testCtx *TestContext) theTotalIs(name, want string) error {
	total, err := testCtx.Registry.Total(name)
	if err != nil {
		return err
	}
	return expectFloat("total", total, want)
}

func (testCtx *TestContext) theCountIs(name string, want int) error {
	count, err := testCtx.Registry.Count(name)
	if err != nil {
		return err
	}
	if count != want {
		return fmt.Errorf("expected count %d, got %d", want, count)
	}
	return nil
}

func (testCtx *TestContext) theMeanIs(name, want string) error {
	mean, err := testCtx.Registry.Mean(name)
	if err != nil {
		return err
	}
	return expectFloat("mean", mean, want)
}

func (testCtx *TestContext) theMedianIs(name, want string) error {
	median, err := testCtx.Registry.Median(name)
	if err != nil {
		return err
	}
	return expectFloat("median", median, want)
}

func (testCtx *TestContext) theLookupFailsUnknown() error {
	if testCtx.LastError == nil {
		return fmt.Errorf("expected an error, got none")
	}
	if !errors.Is(testCtx.LastError, timing.ErrUnknownTimer) {
		return fmt.Errorf("expected unknown timer error, got %v", testCtx.LastError)
	}
	return nil
}

func (testCtx *TestContext) theRegistryIsEmpty() error {
	if names := testCtx.Registry.Names(); len(names) != 0 {
		return fmt.Errorf("expected empty registry, got names %v", names)
	}
	return nil
}

func (testCtx *TestContext) theSinkReceivedReport(prefix string) error {
	for _, report := range testCtx.Reports {
		if strings.HasPrefix(report, prefix) {
			return nil
		}
	}
	return fmt.Errorf("no report starting with %q in %v", prefix, testCtx.Reports)
}

func expectFloat(what string, got float64, want string) error {
	wantValue, err := strconv.ParseFloat(want, 64)
	if err != nil {
		return fmt.Errorf("invalid expected %s %q: %w", what, want, err)
	}
	if math.Abs(got-wantValue) > floatTolerance {
		return fmt.Errorf("expected %s %v, got %v", what, wantValue, got)
	}
	return nil
}
