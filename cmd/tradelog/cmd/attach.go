package cmd

import (
	"github.com/spf13/cobra"
)

var attachCmd = &cobra.Command{
	Use:   "attach <trade-id> <image>...",
	Short: "Attach screenshots to a trade",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runAttach,
}

func init() {
	rootCmd.AddCommand(attachCmd)
}

func runAttach(cmd *cobra.Command, args []string) error {
	j, goals, st, err := loadSession()
	if err != nil {
		return err
	}
	defer st.Close()

	id := args[0]
	if _, err := j.Get(id); err != nil {
		return err
	}
	if err := attachImages(j, id, args[1:]); err != nil {
		return err
	}
	return saveSession(st, j, goals)
}
