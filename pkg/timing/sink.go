package timing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Sink consumes one rendered report line. A nil Sink reports nothing.
// Failures are the sink's own concern; Timer never inspects them.
type Sink func(text string)

// WriterSink returns a Sink that writes each report as a line to w.
func WriterSink(w io.Writer) Sink {
	return func(text string) {
		_, _ = fmt.Fprintln(w, text)
	}
}

// PrintSink returns a Sink that writes reports to standard output.
func PrintSink() Sink {
	return WriterSink(os.Stdout)
}

// SlogSink returns a Sink that reports through a structured logger at the
// given level.
func SlogSink(logger *slog.Logger, level slog.Level) Sink {
	return func(text string) {
		logger.Log(context.Background(), level, text)
	}
}

// TeeSink fans each report out to several sinks in order. Nil entries are
// skipped.
func TeeSink(sinks ...Sink) Sink {
	return func(text string) {
		for _, s := range sinks {
			if s != nil {
				s(text)
			}
		}
	}
}
