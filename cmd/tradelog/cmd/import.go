package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradelog/journal"
	"tradelog/report"
)

var importCmd = &cobra.Command{
	Use:   "import <report.csv|reports.zip>...",
	Short: "Import broker trade-execution reports",
	Long: `Import one or more broker reports into the journal.

Each argument is either a CSV export or a zip bundle of CSV exports. Reports
with unrecognizable layouts are skipped with a warning; the rest of the batch
still imports. Trades already in the journal (same symbol, date and net P&L)
are silently dropped and counted.

Examples:
  tradelog import executions-2024-01.csv
  tradelog import january.zip february.zip`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	j, goals, st, err := loadSession()
	if err != nil {
		return err
	}
	defer st.Close()

	var added, skipped, failed int
	for _, arg := range args {
		files := []string{arg}

		if strings.EqualFold(filepath.Ext(arg), ".zip") {
			dest, err := os.MkdirTemp("", "tradelog-import-")
			if err != nil {
				return fmt.Errorf("temp dir: %w", err)
			}
			defer os.RemoveAll(dest)

			files, err = report.ExpandArchive(arg, dest)
			if err != nil {
				log.Warn("skipping archive", zap.String("file", arg), zap.Error(err))
				failed++
				continue
			}
		}

		for _, f := range files {
			a, s, err := importFile(j, f)
			if err != nil {
				log.Warn("skipping report", zap.String("file", f), zap.Error(err))
				failed++
				continue
			}
			fmt.Printf("%s: %d imported, %d duplicates\n", filepath.Base(f), a, s)
			added += a
			skipped += s
		}
	}

	if err := saveSession(st, j, goals); err != nil {
		return err
	}

	if added == 0 && failed == 0 {
		fmt.Println("no trades found")
	}
	fmt.Printf("total: %d imported, %d duplicates, %d files failed\n", added, skipped, failed)
	return nil
}

func importFile(j *journal.Journal, path string) (added, skipped int, err error) {
	sheet, err := report.ReadSheetFile(path)
	if err != nil {
		return 0, 0, err
	}
	trades, err := report.Parse(sheet, filepath.Base(path), time.Now())
	if err != nil {
		return 0, 0, err
	}
	added, skipped = j.AddUnique(trades)
	return added, skipped, nil
}
