package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/drillwise/drillwise/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show generation usage by purpose",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.EventRepo().UsageByPurpose(cmd.Context())
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Println("No generation calls recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PURPOSE\tREQUESTS\tINPUT TOKENS\tOUTPUT TOKENS")
		for _, s := range stats {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", s.Purpose, s.Requests, s.InputTokens, s.OutputTokens)
		}
		return w.Flush()
	},
}
