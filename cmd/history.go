package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/user/trim-cli/db"
	"github.com/user/trim-cli/pkg/timeutil"
)

func newHistoryCmd(opts *options) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear previously run trims",
		Long:  `Every successful trim is recorded with its source, destination and timestamps unless --no-history is given.`,
	}

	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded trims, most recent first",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.Open(opts.historyDB)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer database.Close()

			trims, err := db.ListTrims(database, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(trims) == 0 {
				fmt.Fprintln(out, "No trims recorded.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tWhen\tStart\tLength\tSource\tDest")
			fmt.Fprintln(w, "--\t----\t-----\t------\t------\t----")
			for _, t := range trims {
				fmt.Fprintf(w, "%d\t%s\t%s\t%ss\t%s\t%s\n",
					t.ID,
					t.CreatedAt.Format("2006-01-02 15:04"),
					formatStart(t),
					timeutil.FormatLength(t.Length),
					t.SourcePath,
					t.DestPath,
				)
			}
			w.Flush()

			fmt.Fprintf(out, "\n%d trim(s) found.\n", len(trims))
			return nil
		},
	}
	listCmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of trims to show (0 for all)")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded trims",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.Open(opts.historyDB)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer database.Close()

			n, err := db.ClearTrims(database)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d trim(s) deleted.\n", n)
			return nil
		},
	}

	historyCmd.AddCommand(listCmd)
	historyCmd.AddCommand(clearCmd)
	return historyCmd
}

// formatStart writes the start second back in the shape it was entered in,
// falling back to the raw text when that no longer parses.
func formatStart(t db.Trim) string {
	_, shape, err := timeutil.ParseShape(t.StartText)
	if err != nil {
		return t.StartText
	}
	return timeutil.FormatShape(t.StartSeconds, shape)
}
