// Package render draws run statistics for the terminal: a comparison table
// across tags and a runtime plot over time.
package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"

	"github.com/MeKo-Tech/tictoc/internal/history"
)

// StatsTable writes a comparison of every tag recorded for one command, one
// row per tag sorted by mean runtime. The reference tag's mean runtime is
// the baseline for the ratio column.
func StatsTable(w io.Writer, refTag string, runs map[string][]history.Record, precision int) error {
	ref, ok := runs[refTag]
	if !ok || len(ref) == 0 {
		return fmt.Errorf("no runs recorded for tag %q", refTag)
	}
	refMean, err := stats.Mean(history.Seconds(ref))
	if err != nil {
		return fmt.Errorf("computing reference mean: %w", err)
	}

	means := make(map[string]float64, len(runs))
	tags := make([]string, 0, len(runs))
	for tag, records := range runs {
		if len(records) == 0 {
			continue
		}
		mean, err := stats.Mean(history.Seconds(records))
		if err != nil {
			return fmt.Errorf("computing mean for tag %q: %w", tag, err)
		}
		means[tag] = mean
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if means[tags[i]] == means[tags[j]] {
			return tags[i] < tags[j]
		}
		return means[tags[i]] < means[tags[j]]
	})

	ff := func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Tag", "Last", "#", "Min", "Mean", "Max", "vs " + refTag})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, tag := range tags {
		times := history.Seconds(runs[tag])
		minV, _ := stats.Min(times)
		maxV, _ := stats.Max(times)
		table.Append([]string{
			tag,
			ff(times[len(times)-1]),
			strconv.Itoa(len(times)),
			ff(minV),
			ff(means[tag]),
			ff(maxV),
			fmt.Sprintf("%.2fx", means[tag]/refMean),
		})
	}
	table.Render()
	return nil
}
