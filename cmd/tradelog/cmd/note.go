package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"tradelog/journal"
)

// Notes and images are the only mutable parts of a logged trade; everything
// else is fixed at creation.

var noteCmd = &cobra.Command{
	Use:   "note <trade-id> <text>...",
	Short: "Replace the notes on a trade",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runNote,
}

func init() {
	rootCmd.AddCommand(noteCmd)
}

func runNote(cmd *cobra.Command, args []string) error {
	j, goals, st, err := loadSession()
	if err != nil {
		return err
	}
	defer st.Close()

	text := strings.Join(args[1:], " ")
	err = j.Update(args[0], func(t *journal.Trade) { t.Notes = text })
	if err != nil {
		return err
	}
	return saveSession(st, j, goals)
}
