package cmd

import (
	"context"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/gabe/ecopatrol/internal/tui"
	"github.com/gabe/ecopatrol/internal/watch"
)

// runDashboard is swapped out in tests
var runDashboard = tui.Run

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Short:   "Launch the TUI dashboard",
	Long:    `Launch the interactive dashboard with map, analytics, report form and task list. It reloads when the report store changes.`,
	Aliases: []string{"ui"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		changes, err := watch.New(store.Path()).Watch(ctx)
		if err != nil {
			log.WithError(err).Warn("live reload disabled")
			changes = nil
		}

		return runDashboard(tui.Options{
			Store:   store,
			Changes: changes,
			Config:  cfg,
			NoColor: flagNoColor,
		})
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
