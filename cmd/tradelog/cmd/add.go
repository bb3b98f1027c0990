package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradelog/images"
	"tradelog/journal"
	"tradelog/pkg/id"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a trade manually",
	Long: `Log one trade by hand, optionally attaching screenshots.

Examples:
  tradelog add --symbol AAPL --net 103.50 --gross 105 --commission -1 --fee -0.5 --qty 100
  tradelog add --symbol ES --side Short --date 2024-01-15 --net -250 --image entry.png --image exit.png`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var (
	addSymbol     string
	addSide       string
	addDate       string
	addNet        float64
	addGross      float64
	addCommission float64
	addFee        float64
	addQty        int
	addDuration   string
	addNotes      string
	addImages     []string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addSymbol, "symbol", "", "ticker symbol (required)")
	addCmd.Flags().StringVar(&addSide, "side", "Long", "trade side: Long or Short")
	addCmd.Flags().StringVar(&addDate, "date", "", "trade date YYYY-MM-DD (default today)")
	addCmd.Flags().Float64Var(&addNet, "net", 0, "net P&L after fees")
	addCmd.Flags().Float64Var(&addGross, "gross", 0, "gross P&L before fees (default net)")
	addCmd.Flags().Float64Var(&addCommission, "commission", 0, "commission, typically negative")
	addCmd.Flags().Float64Var(&addFee, "fee", 0, "exchange/ECN fee, typically negative")
	addCmd.Flags().IntVar(&addQty, "qty", 0, "shares or contracts")
	addCmd.Flags().StringVar(&addDuration, "duration", "", "holding time H:MM:SS")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	addCmd.Flags().StringArrayVar(&addImages, "image", nil, "screenshot file, repeatable")
	addCmd.MarkFlagRequired("symbol")
}

func runAdd(cmd *cobra.Command, args []string) error {
	j, goals, st, err := loadSession()
	if err != nil {
		return err
	}
	defer st.Close()

	date := addDate
	if date == "" {
		date = time.Now().Format(journal.DateLayout)
	}
	if _, err := time.Parse(journal.DateLayout, date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}

	gross := addGross
	if !cmd.Flags().Changed("gross") {
		gross = addNet
	}

	t := journal.Trade{
		ID:          id.New(),
		Symbol:      strings.ToUpper(strings.TrimSpace(addSymbol)),
		Side:        parseSideFlag(addSide),
		Date:        date,
		Gross:       gross,
		Commission:  addCommission,
		ExchangeFee: addFee,
		Quantity:    addQty,
		Net:         addNet,
		Duration:    addDuration,
		Notes:       addNotes,
		Source:      "manual",
	}
	if err := j.Add(t); err != nil {
		return err
	}

	if len(addImages) > 0 {
		if err := attachImages(j, t.ID, addImages); err != nil {
			return err
		}
	}

	if err := saveSession(st, j, goals); err != nil {
		return err
	}
	fmt.Printf("logged %s %s %s (net %.2f), id %s\n", t.Date, t.Side, t.Symbol, t.Net, t.ID)
	return nil
}

// attachImages pushes the screenshots through the compression pipeline and
// appends each completion to the trade. The consumer loop is the only journal
// writer; completion order does not matter because attachment is append-only.
func attachImages(j *journal.Journal, tradeID string, paths []string) error {
	pipe := images.NewPipeline(len(paths))
	go func() {
		for _, p := range paths {
			data, err := os.ReadFile(p)
			if err != nil {
				log.Warn("skipping image", zap.String("file", p), zap.Error(err))
				continue
			}
			pipe.Submit(tradeID, filepath.Base(p), data)
		}
		pipe.CloseSubmit()
	}()

	for res := range pipe.Results() {
		if res.Err != nil {
			log.Warn("skipping image", zap.Error(res.Err))
			continue
		}
		if err := j.AppendImage(res.TradeID, res.Image); err != nil {
			return err
		}
	}
	return nil
}

func parseSideFlag(s string) journal.Side {
	if strings.EqualFold(strings.TrimSpace(s), "short") {
		return journal.Short
	}
	return journal.Long
}
