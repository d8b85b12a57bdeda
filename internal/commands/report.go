package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"imobicrm/internal/report"
	"imobicrm/internal/store"
)

func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the per-property summary report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerFlag, _ := cmd.Flags().GetUint("owner")

			_, db, err := setup()
			if err != nil {
				return err
			}

			var ownerID *uint
			if ownerFlag != 0 {
				ownerID = &ownerFlag
			}

			rows, err := report.New(store.New(db)).Summary(cmd.Context(), ownerID)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "Code\tTitle\tOwner\tInterested\tAvg proposed\tPrice\tLast interaction")
			for _, row := range report.FormatRows(rows) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
					row.Code, row.Title, row.OwnerName, row.InterestedCount,
					row.AvgProposed, row.Price, row.LastInteraction)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Uint("owner", 0, "Restrict the report to one owner ID")

	return cmd
}
