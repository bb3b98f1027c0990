package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradelog/journal"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <backup.json[.xz]>",
	Short: "Import trades from a backup file",
	Long: `Merge a backup file into the journal. Any JSON document with a trades
array is accepted; unknown fields are ignored and records without an id get a
fresh one. Trades already present (same symbol, date and net P&L) are dropped,
so restoring the same backup twice adds nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	j, goals, st, err := loadSession()
	if err != nil {
		return err
	}
	defer st.Close()

	trades, err := journal.ImportFile(args[0])
	if err != nil {
		return err
	}

	added, skipped := j.AddUnique(trades)
	if err := saveSession(st, j, goals); err != nil {
		return err
	}
	fmt.Printf("restored %d trades, %d duplicates skipped\n", added, skipped)
	return nil
}
