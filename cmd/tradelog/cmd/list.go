package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tradelog/journal"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades, optionally within a date range",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listFrom string
	listTo   string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listFrom, "from", "", "start date YYYY-MM-DD, inclusive")
	listCmd.Flags().StringVar(&listTo, "to", "", "end date YYYY-MM-DD, inclusive")
}

func runList(cmd *cobra.Command, args []string) error {
	j, _, st, err := loadSession()
	if err != nil {
		return err
	}
	defer st.Close()

	trades := journal.FilterRange(j.Trades(), listFrom, listTo)
	if len(trades) == 0 {
		fmt.Println("no trades")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSYMBOL\tSIDE\tQTY\tNET\tDURATION\tIMAGES\tSOURCE\tID")
	for _, t := range trades {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%s\t%d\t%s\t%s\n",
			t.Date, t.Symbol, t.Side, t.Quantity, t.Net, t.Duration,
			len(t.Images), t.Source, t.ID)
	}
	return w.Flush()
}
