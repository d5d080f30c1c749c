package timing

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := WriterSink(&buf)

	sink("first report")
	sink("second report")

	assert.Equal(t, "first report\nsecond report\n", buf.String())
}

func TestPrintSink(t *testing.T) {
	assert.NotNil(t, PrintSink())
}

func TestSlogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	SlogSink(logger, slog.LevelInfo)("elapsed 1.5s")
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "elapsed 1.5s")

	buf.Reset()
	SlogSink(logger, slog.LevelDebug)("elapsed 2.5s")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestSlogSinkHonorsLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	SlogSink(logger, slog.LevelDebug)("too quiet")
	assert.Empty(t, buf.String())
}

func TestTeeSink(t *testing.T) {
	var first, second bytes.Buffer
	sink := TeeSink(WriterSink(&first), nil, WriterSink(&second))

	sink("report")

	assert.Equal(t, "report\n", first.String())
	assert.Equal(t, "report\n", second.String())
}

func TestTimerReportsThroughAdapterSinks(t *testing.T) {
	clock := &fakeClock{}
	var buf, logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	timer := &Timer{
		Text:  Template("took {seconds:.1f}s"),
		Sink:  TeeSink(WriterSink(&buf), SlogSink(logger, slog.LevelDebug)),
		Clock: clock.Now,
	}
	require.NoError(t, timer.Start())
	clock.Advance(1500 * time.Millisecond)
	_, err := timer.Stop()
	require.NoError(t, err)

	assert.Equal(t, "took 1.5s\n", buf.String())
	assert.Contains(t, logBuf.String(), "took 1.5s")
}
