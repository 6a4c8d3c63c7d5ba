package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gabe/ecopatrol/internal/display"
	"github.com/gabe/ecopatrol/internal/filter"
	"github.com/gabe/ecopatrol/internal/layout"
)

var mapCmd = &cobra.Command{
	Use:     "map",
	Short:   "Draw the report map with legend and latest reports",
	Aliases: []string{"m"},
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

		opts := displayOptions()
		grid := display.RenderMap(layout.AssignPositions(reports), cfg.Map.Width, cfg.Map.Height, opts)
		left := lipgloss.JoinVertical(lipgloss.Left, grid, display.RenderExtent(reports, opts))
		side := lipgloss.JoinVertical(lipgloss.Left,
			display.RenderLegend(opts),
			display.RenderRecent(filter.Recent(reports, cfg.Dashboard.RecentCount), opts))

		fmt.Fprintln(cmd.OutOrStdout(), lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", side))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)
}
