package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	j, goals, st, err := loadSession()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := j.Delete(args[0]); err != nil {
		return err
	}
	if err := saveSession(st, j, goals); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}
