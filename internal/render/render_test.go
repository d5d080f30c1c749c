package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/tictoc/internal/history"
)

func records(seconds ...float64) []history.Record {
	out := make([]history.Record, len(seconds))
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, s := range seconds {
		out[i] = history.Record{Timestamp: base.Add(time.Duration(i) * time.Hour), Seconds: s}
	}
	return out
}

func TestStatsTable(t *testing.T) {
	runs := map[string][]history.Record{
		"default": records(1.0, 2.0, 3.0),
		"fast":    records(0.5, 0.5),
	}

	var sb strings.Builder
	require.NoError(t, StatsTable(&sb, "default", runs, 4))
	out := sb.String()

	assert.Contains(t, out, "default")
	assert.Contains(t, out, "fast")
	assert.Contains(t, out, "2.0000") // default mean
	assert.Contains(t, out, "0.5000") // fast mean
	assert.Contains(t, out, "1.00x")  // reference against itself
	assert.Contains(t, out, "0.25x")  // fast vs default
	assert.Contains(t, out, "vs default")

	// Rows are sorted by mean, so "fast" is listed before "default".
	assert.Less(t, strings.Index(out, "fast"), strings.LastIndex(out, "default"))
}

func TestStatsTableUnknownReference(t *testing.T) {
	runs := map[string][]history.Record{"fast": records(0.5)}

	var sb strings.Builder
	err := StatsTable(&sb, "default", runs, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default")
}

func TestRuntimePlot(t *testing.T) {
	plot := RuntimePlot(records(1, 2, 3, 2, 1), 10, 40)
	assert.NotEmpty(t, plot)
	assert.Contains(t, plot, "┤")
}

func TestRuntimePlotNeedsTwoRuns(t *testing.T) {
	assert.Empty(t, RuntimePlot(records(1), 10, 40))
	assert.Empty(t, RuntimePlot(nil, 10, 40))
}
