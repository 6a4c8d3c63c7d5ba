package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabe/ecopatrol/internal/display"
	"github.com/gabe/ecopatrol/internal/stats"
	"github.com/gabe/ecopatrol/internal/trend"
)

var (
	flagStatsJSON  bool
	flagStatsTrend bool
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Show counts and shares per type, status and priority",
	Aliases: []string{"s"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		reports, err := store.List()
		if err != nil {
			return err
		}
		s := stats.Aggregate(reports)

		out := cmd.OutOrStdout()
		if flagStatsJSON {
			data, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		opts := displayOptions()
		fmt.Fprintln(out, display.RenderSummary(s.Summary(), opts))
		fmt.Fprintln(out, display.RenderAnalytics(s, opts))
		if flagStatsTrend {
			fmt.Fprint(out, display.RenderTrend(trend.Weekly(trend.NewSource(cfg.Trend.Seed)), opts))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsJSON, "json", false, "Output as JSON")
	statsCmd.Flags().BoolVar(&flagStatsTrend, "trend", false, "Include the weekly activity chart")

	rootCmd.AddCommand(statsCmd)
}
