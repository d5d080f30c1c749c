package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/tictoc/internal/config"
	"github.com/MeKo-Tech/tictoc/internal/history"
	"github.com/MeKo-Tech/tictoc/internal/render"
)

// statsCmd shows stored statistics without running anything.
var statsCmd = &cobra.Command{
	Use:   "stats [flags] -- command [args...]",
	Short: "Show recorded statistics for a command",
	Long: `Show the statistics recorded for a command across all tags: last
runtime, number of runs, min, mean and max, the ratio against the
reference tag, and a plot of the reference tag's runtimes over time.

Examples:
  tictoc stats -- make build
  tictoc stats --tag fast -- make build`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		tag := cfg.Run.Tag
		if cmd.Flags().Changed("tag") {
			tag, _ = cmd.Flags().GetString("tag")
		}
		noPlot, _ := cmd.Flags().GetBool("no-plot")

		return showStats(cmd, cfg, tag, args, noPlot)
	},
}

// showStats renders the cross-tag comparison table for a command, plus the
// runtime plot of the requested tag.
func showStats(cmd *cobra.Command, cfg *config.Config, tag string, command []string, noPlot bool) error {
	w := cmd.OutOrStdout()
	commandName := history.NormalizeName(command...)
	normalizedTag := history.NormalizeName(tag)

	store := history.NewStore(cfg.CacheDir)
	runs, err := store.LoadMatching(commandName)
	if err != nil {
		return fmt.Errorf("loading run history: %w", err)
	}
	if len(runs) == 0 {
		return fmt.Errorf("no runs recorded for %q", strings.Join(command, " "))
	}

	fmt.Fprintf(w, "\ntictoc: %s\n", strings.Join(command, " "))
	if err := render.StatsTable(w, normalizedTag, runs, cfg.Precision); err != nil {
		return err
	}

	if cfg.Plot.Enabled && !noPlot {
		if plot := render.RuntimePlot(runs[normalizedTag], cfg.Plot.Height, cfg.Plot.Width); plot != "" {
			fmt.Fprintf(w, "\nRuntimes of %s (%s) over time\n%s\n", strings.Join(command, " "), tag, plot)
		}
	}
	return nil
}

func init() {
	statsCmd.Flags().StringP("tag", "t", "default", "reference tag for the comparison")
	statsCmd.Flags().Bool("no-plot", false, "skip the runtime plot")
	rootCmd.AddCommand(statsCmd)
}
