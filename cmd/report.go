package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gabe/ecopatrol/internal/models"
	"github.com/gabe/ecopatrol/internal/storage"
)

var (
	flagReportCategory    string
	flagReportDescription string
	flagReportAddress     string
	flagReportReporter    string
	flagReportPriority    string
	flagReportLat         float64
	flagReportLng         float64
)

var reportCmd = &cobra.Command{
	Use:     "report <title>",
	Short:   "Submit a new environmental report",
	Long:    `Submit a report. It starts with status "new" and today's date.`,
	Aliases: []string{"r"},
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := models.ParseCategory(flagReportCategory)
		if err != nil {
			return err
		}

		var priority models.Priority
		if flagReportPriority != "" {
			if priority, err = models.ParsePriority(flagReportPriority); err != nil {
				return err
			}
		}

		title := strings.Join(args, " ")
		description := flagReportDescription
		if description == "" {
			description = title
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		created, err := store.Create(&storage.Submission{
			Category:     category,
			Title:        title,
			Description:  description,
			Address:      flagReportAddress,
			ReporterName: flagReportReporter,
			Priority:     priority,
			Latitude:     flagReportLat,
			Longitude:    flagReportLng,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Submitted report %s: %s\n", created.ID, created.Title)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&flagReportCategory, "category", "c", "", "Problem type (air, water, waste, noise)")
	reportCmd.Flags().StringVarP(&flagReportDescription, "description", "d", "", "Details (defaults to the title)")
	reportCmd.Flags().StringVarP(&flagReportAddress, "address", "a", "", "Address or location")
	reportCmd.Flags().StringVar(&flagReportReporter, "reporter", "", "Reporter name")
	reportCmd.Flags().StringVarP(&flagReportPriority, "priority", "p", "", "Priority (critical, high, medium, low)")
	reportCmd.Flags().Float64Var(&flagReportLat, "lat", storage.CenterLatitude, "Latitude")
	reportCmd.Flags().Float64Var(&flagReportLng, "lng", storage.CenterLongitude, "Longitude")
	reportCmd.MarkFlagRequired("category")

	rootCmd.AddCommand(reportCmd)
}
