package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabe/ecopatrol/internal/storage"
)

var flagSeed bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file and report store",
	Long:  `Write a default config (if missing) and create the report store. With --seed the five demo reports are loaded.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if flagSeed {
			existing, err := store.List()
			if err != nil {
				return err
			}
			if len(existing) > 0 {
				return fmt.Errorf("store %s already has %d reports, not seeding", store.Path(), len(existing))
			}
			demo := storage.DemoReports()
			if err := store.Import(demo); err != nil {
				return err
			}
			fmt.Fprintf(out, "Seeded %d demo reports\n", len(demo))
		}

		fmt.Fprintf(out, "Report store: %s\n", store.Path())
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&flagSeed, "seed", false, "Load the demo reports into an empty store")
	rootCmd.AddCommand(initCmd)
}
