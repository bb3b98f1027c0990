package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every trade from the journal",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

var clearYes bool

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "confirm deletion")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		return fmt.Errorf("refusing to clear without --yes")
	}

	j, goals, st, err := loadSession()
	if err != nil {
		return err
	}
	defer st.Close()

	n := j.Len()
	j.Clear()
	if err := saveSession(st, j, goals); err != nil {
		return err
	}
	fmt.Printf("deleted %d trades\n", n)
	return nil
}
