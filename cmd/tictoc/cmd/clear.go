package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/tictoc/internal/history"
)

// clearCmd deletes stored run history.
var clearCmd = &cobra.Command{
	Use:   "clear [flags] [-- command [args...]]",
	Short: "Delete recorded run history",
	Long: `Delete the run history recorded for a command (all tags), or with
--all the entire history.

Examples:
  tictoc clear -- make build
  tictoc clear --all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		all, _ := cmd.Flags().GetBool("all")

		if !all && len(args) == 0 {
			return fmt.Errorf("specify a command to clear, or use --all")
		}

		store := history.NewStore(cfg.CacheDir)
		if all {
			if err := store.Clear(""); err != nil {
				return fmt.Errorf("clearing history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared all recorded runs")
			return nil
		}

		commandName := history.NormalizeName(args...)
		if err := store.Clear(commandName); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared recorded runs for %s\n", strings.Join(args, " "))
		return nil
	},
}

func init() {
	clearCmd.Flags().Bool("all", false, "delete the entire run history")
	rootCmd.AddCommand(clearCmd)
}
