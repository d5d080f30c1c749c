package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/tictoc/internal/history"
	"github.com/MeKo-Tech/tictoc/pkg/timing"
)

// runCmd times an external command and records the run.
var runCmd = &cobra.Command{
	Use:   "run [flags] -- command [args...]",
	Short: "Time a command and record the run",
	Long: `Time an external command, store the measured runtime under a tag, and
show statistics across all recorded runs of that command.

The command's stdin, stdout and stderr are passed through unchanged. The
measured runtime is recorded even when the command exits non-zero.

Examples:
  tictoc run -- make build
  tictoc run --tag fast -- make build
  tictoc run -t v2 -- ./scripts/bench.sh --full`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		tag := cfg.Run.Tag
		if cmd.Flags().Changed("tag") {
			tag, _ = cmd.Flags().GetString("tag")
		}
		noPlot, _ := cmd.Flags().GetBool("no-plot")

		fmt.Fprintf(cmd.OutOrStdout(), "Running %s with tag %s\n", strings.Join(args, " "), tag)

		child := exec.CommandContext(cmd.Context(), args[0], args[1:]...) //nolint:gosec // running the user's command is the point
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr

		timer := &timing.Timer{}
		if cfg.Verbose {
			timer.InitialText = timing.DefaultInitialText
			timer.Sink = timing.SlogSink(slog.Default(), slog.LevelDebug)
		}
		seconds, err := timer.Measure(func() {
			if runErr := child.Run(); runErr != nil {
				slog.Warn("Command exited with error", "error", runErr)
			}
		})
		if err != nil {
			return fmt.Errorf("timing command: %w", err)
		}

		name := history.NormalizeName(append([]string{tag}, args...)...)
		store := history.NewStore(cfg.CacheDir)
		rec := history.Record{Timestamp: time.Now(), Seconds: seconds}
		if err := store.Append(name, rec); err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
		slog.Debug("Run recorded", "name", name, "seconds", seconds)

		return showStats(cmd, cfg, tag, args, noPlot)
	},
}

func init() {
	runCmd.Flags().StringP("tag", "t", "default", "tag to record this run under")
	runCmd.Flags().Bool("no-plot", false, "skip the runtime plot")
	rootCmd.AddCommand(runCmd)
}
