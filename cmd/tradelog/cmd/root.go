package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradelog/config"
	"tradelog/journal"
	"tradelog/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tradelog",
	Short: "A personal trading journal with broker-report import and performance analytics",
	Long: `Tradelog is a local, single-user trading journal.

It provides tools for:
  - Importing broker trade-execution reports (CSV, or zip batches)
  - Logging trades manually, with screenshot attachments
  - Performance statistics: win rate, profit factor, expectancy, drawdown
  - Goal tracking against monthly targets and daily limits
  - Backup export/import of the whole journal

All data lives in a single local file; there is no server and no account.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	cfgPath string
	cfg     *config.Config
	log     *zap.Logger
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (YAML or JSON)")
}

func setup(cmd *cobra.Command, args []string) error {
	if cfgPath != "" {
		c, err := config.LoadFromFile(cfgPath)
		if err != nil {
			return err
		}
		cfg = c
	} else {
		cfg = config.Default()
	}

	l, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	log = l
	return nil
}

func openStore() (journal.Store, error) {
	switch cfg.Store.Type {
	case "sqlite":
		return journal.NewSQLiteStore(cfg.Store.Path)
	default:
		return journal.NewFileStore(cfg.Store.Path), nil
	}
}

// loadSession opens the configured store and materializes the journal.
// Callers own closing the returned store.
func loadSession() (*journal.Journal, journal.Goals, journal.Store, error) {
	st, err := openStore()
	if err != nil {
		return nil, journal.Goals{}, nil, fmt.Errorf("open store: %w", err)
	}
	doc, err := st.Load()
	if err != nil {
		st.Close()
		return nil, journal.Goals{}, nil, fmt.Errorf("load journal: %w", err)
	}
	return journal.FromTrades(doc.Trades), doc.Goals, st, nil
}

// saveSession persists the session. A full store is reported but does not
// fail the command: the in-memory data survives long enough to export.
func saveSession(st journal.Store, j *journal.Journal, goals journal.Goals) error {
	err := st.Save(journal.Document{Trades: j.Trades(), Goals: goals})
	if err != nil {
		if errors.Is(err, journal.ErrStorageFull) {
			log.Warn("storage full; journal kept in memory, run 'tradelog export' to back it up",
				zap.Error(err))
			return nil
		}
		return err
	}
	return nil
}
