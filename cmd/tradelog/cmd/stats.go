package cmd

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"tradelog/analytics"
	"tradelog/journal"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show performance statistics for a date range",
	Long: `Compute the dashboard statistics over the journal, optionally narrowed
to an inclusive date range.

Examples:
  tradelog stats
  tradelog stats --from 2024-01-01 --to 2024-03-31`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var (
	statsFrom string
	statsTo   string
)

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsFrom, "from", "", "start date YYYY-MM-DD, inclusive")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "end date YYYY-MM-DD, inclusive")
}

func runStats(cmd *cobra.Command, args []string) error {
	j, _, st, err := loadSession()
	if err != nil {
		return err
	}
	defer st.Close()

	trades := journal.FilterRange(j.Trades(), statsFrom, statsTo)
	res := analytics.Compute(trades)
	printStats(os.Stdout, res)
	return nil
}

func printStats(w io.Writer, res analytics.Result) {
	r := res.Report

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Performance Statistics")
	fmt.Fprintln(w, "==================================================")

	if !r.HasTrades {
		fmt.Fprintln(w, "No trades in range.")
		return
	}

	fmt.Fprintln(w, "Trades")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Total:          %d\n", r.Total)
	fmt.Fprintf(w, "Wins:           %d\n", r.Wins)
	fmt.Fprintf(w, "Losses:         %d\n", r.Losses)
	fmt.Fprintf(w, "Win Rate:       %.2f%%\n", r.WinRate)
	if r.AvgDuration != "" {
		fmt.Fprintf(w, "Avg Duration:   %s\n", r.AvgDuration)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "P&L")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Net Total:      %.2f\n", r.NetTotal)
	fmt.Fprintf(w, "Gross Profit:   %.2f\n", r.GrossProfit)
	fmt.Fprintf(w, "Gross Loss:     %.2f\n", r.GrossLoss)
	fmt.Fprintf(w, "Best Trade:     %.2f\n", r.BestTrade)
	fmt.Fprintf(w, "Worst Trade:    %.2f\n", r.WorstTrade)
	fmt.Fprintf(w, "Commissions:    %.2f\n", r.TotalCommissions)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Quality")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Avg Win:        %.2f\n", r.AvgWin)
	fmt.Fprintf(w, "Avg Loss:       %.2f\n", r.AvgLoss)
	if math.IsInf(r.ProfitFactor, 1) {
		fmt.Fprintf(w, "Profit Factor:  n/a (no losses)\n")
	} else {
		fmt.Fprintf(w, "Profit Factor:  %.2f\n", r.ProfitFactor)
	}
	fmt.Fprintf(w, "Expectancy:     %.2f\n", r.Expectancy)
	if r.AvgRR > 0 {
		fmt.Fprintf(w, "Avg R:R:        %.2f\n", r.AvgRR)
	}
	fmt.Fprintf(w, "Max Drawdown:   %.2f\n", r.MaxDrawdown)

	if n := len(res.Series.Equity); n > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Equity")
		fmt.Fprintln(w, "--------------------------------------------------")
		fmt.Fprintf(w, "Start:          %s  %.2f\n",
			res.Series.Equity[0].Date, res.Series.Equity[0].Value)
		fmt.Fprintf(w, "End:            %s  %.2f\n",
			res.Series.Equity[n-1].Date, res.Series.Equity[n-1].Value)
	}
	fmt.Fprintln(w)
}
