package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gabe/ecopatrol/internal/display"
	"github.com/gabe/ecopatrol/internal/filter"
)

var (
	flagTasksType   string
	flagTasksStatus string
	flagTasksJSON   bool
	flagTasksCards  bool
)

var tasksCmd = &cobra.Command{
	Use:     "tasks",
	Short:   "List reports, optionally filtered by type and status",
	Aliases: []string{"t", "ls"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := filter.ParseCriteria(flagTasksType, flagTasksStatus)
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

		out := cmd.OutOrStdout()
		if flagTasksJSON {
			data, err := json.MarshalIndent(matched, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		if flagTasksCards {
			fmt.Fprint(out, display.RenderTasks(matched, criteria, displayOptions()))
			return nil
		}

		if len(matched) == 0 {
			fmt.Fprintln(out, display.EmptyTasksMessage)
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tTITLE\tSTATUS\tPRIORITY\tDATE")
		for _, r := range matched {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.Category, r.Title, r.Status, r.Priority, r.SubmittedDate)
		}
		return w.Flush()
	},
}

func init() {
	tasksCmd.Flags().StringVar(&flagTasksType, "type", filter.All, "Problem type filter (all, air, water, waste, noise)")
	tasksCmd.Flags().StringVar(&flagTasksStatus, "status", filter.All, "Status filter (all, new, in_progress, resolved)")
	tasksCmd.Flags().BoolVar(&flagTasksJSON, "json", false, "Output as JSON")
	tasksCmd.Flags().BoolVar(&flagTasksCards, "cards", false, "Render task cards instead of a table")

	rootCmd.AddCommand(tasksCmd)
}
