package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradelog/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal to a backup file",
	Long: `Write every trade to a backup file. A .xz output name produces an
LZMA2-compressed backup, which matters once screenshots are embedded.

Examples:
  tradelog export
  tradelog export --out backup-2024.json.xz`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportOut string

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (default tradelog-backup-<date>.json)")
}

func runExport(cmd *cobra.Command, args []string) error {
	j, _, st, err := loadSession()
	if err != nil {
		return err
	}
	defer st.Close()

	now := time.Now()
	out := exportOut
	if out == "" {
		out = fmt.Sprintf("tradelog-backup-%s.json", now.Format(journal.DateLayout))
	}

	if err := journal.ExportFile(out, j.Trades(), now); err != nil {
		return err
	}
	fmt.Printf("exported %d trades to %s\n", j.Len(), out)
	return nil
}
