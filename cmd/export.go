package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabe/ecopatrol/internal/export"
	"github.com/gabe/ecopatrol/internal/filter"
	"github.com/gabe/ecopatrol/internal/stats"
)

var (
	flagExportType   string
	flagExportStatus string
)

var exportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Write tasks and analytics to an Excel workbook",
	Long:  `Write a "Tasks" sheet and an "Analytics" sheet. Filters narrow both sheets to the matching reports.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := filter.ParseCriteria(flagExportType, flagExportStatus)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		reports, err := store.List()
		if err != nil {
			return err
		}
		matched := filter.Apply(reports, criteria)

		if err := export.WriteFile(args[0], matched, stats.Aggregate(matched)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d reports to %s\n", len(matched), args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagExportType, "type", filter.All, "Problem type filter")
	exportCmd.Flags().StringVar(&flagExportStatus, "status", filter.All, "Status filter")

	rootCmd.AddCommand(exportCmd)
}
