package render

import (
	"github.com/guptarohit/asciigraph"

	"github.com/MeKo-Tech/tictoc/internal/history"
)

// RuntimePlot renders the runtimes of one tag as a terminal line chart, in
// run order. It returns the empty string when fewer than two runs exist,
// since a single point plots nothing useful.
func RuntimePlot(records []history.Record, height, width int) string {
	if len(records) < 2 {
		return ""
	}
	return asciigraph.Plot(history.Seconds(records),
		asciigraph.Height(height),
		asciigraph.Width(width),
	)
}
