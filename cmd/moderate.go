package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabe/ecopatrol/internal/models"
)

var moderateCmd = &cobra.Command{
	Use:   "moderate <report-id> <status>",
	Short: "Move a report to a new status",
	Long:  `Set a report's status to new, in_progress or resolved.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := models.ParseStatus(args[1])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		updated, err := store.SetStatus(args[0], status)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Report %s is now %s\n", updated.ID, updated.Status.Label())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moderateCmd)
}
